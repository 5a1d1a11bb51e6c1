package sellerControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalogControllers "github.com/Bilal010108/Halal-Market/controllers/catalog"
	"github.com/Bilal010108/Halal-Market/middleware"
	"github.com/Bilal010108/Halal-Market/models"
	"github.com/Bilal010108/Halal-Market/testutil"
)

func setupSellerRouter(db *gorm.DB, user models.User) *gin.Engine {
	r := testutil.NewRouter()
	g := r.Group("/", testutil.AuthAs(user))
	g.POST("/seller_requests/", SubmitSellerRequest(db))

	admin := g.Group("/", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/seller_requests/", GetSellerRequests(db))
	admin.PATCH("/seller_requests/:id", DecideSellerRequest(db))
	return r
}

func submitRequest(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	body := `{"phone_number": "+996555001122", "message": "хочу продавать"}`
	req := httptest.NewRequest(http.MethodPost, "/seller_requests/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decideRequest(t *testing.T, r *gin.Engine, id uint, status string) *httptest.ResponseRecorder {
	t.Helper()

	body := fmt.Sprintf(`{"status": %q}`, status)
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/seller_requests/%d", id), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitSellerRequestRejectsSecond(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "hopeful", models.RoleClient)
	r := setupSellerRouter(db, client)

	require.Equal(t, http.StatusCreated, submitRequest(t, r).Code)
	assert.Equal(t, http.StatusConflict, submitRequest(t, r).Code)

	var count int64
	db.Model(&models.SellerRequest{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDecideRequiresAdminRole(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "hopeful", models.RoleClient)
	r := setupSellerRouter(db, client)
	require.Equal(t, http.StatusCreated, submitRequest(t, r).Code)

	var request models.SellerRequest
	require.NoError(t, db.First(&request).Error)

	// the requester is a client, not an admin
	w := decideRequest(t, r, request.ID, "approved")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApprovePromotesRoleAndCreatesStore(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "bakyt", models.RoleClient)
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)

	clientRouter := setupSellerRouter(db, client)
	require.Equal(t, http.StatusCreated, submitRequest(t, clientRouter).Code)

	var request models.SellerRequest
	require.NoError(t, db.First(&request).Error)

	adminRouter := setupSellerRouter(db, admin)
	w := decideRequest(t, adminRouter, request.ID, "approved")
	require.Equal(t, http.StatusOK, w.Code)

	var promoted models.User
	require.NoError(t, db.First(&promoted, "id = ?", client.ID).Error)
	assert.Equal(t, models.RoleSeller, promoted.Role)

	var stores []models.Store
	require.NoError(t, db.Where("store_owner_id = ?", client.ID).Find(&stores).Error)
	require.Len(t, stores, 1, "approval must create exactly one store")
	assert.Equal(t, "Магазин bakyt", stores[0].StoreName)
}

func TestRejectOnlyChangesStatus(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "nurlan", models.RoleClient)
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)

	clientRouter := setupSellerRouter(db, client)
	require.Equal(t, http.StatusCreated, submitRequest(t, clientRouter).Code)

	var request models.SellerRequest
	require.NoError(t, db.First(&request).Error)

	adminRouter := setupSellerRouter(db, admin)
	w := decideRequest(t, adminRouter, request.ID, "rejected")
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", client.ID).Error)
	assert.Equal(t, models.RoleClient, user.Role)

	var storeCount int64
	db.Model(&models.Store{}).Count(&storeCount)
	assert.Zero(t, storeCount)

	require.NoError(t, db.First(&request, request.ID).Error)
	assert.Equal(t, models.SellerRequestRejected, request.Status)
}

func TestDecideIsTerminal(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "aida", models.RoleClient)
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)

	clientRouter := setupSellerRouter(db, client)
	require.Equal(t, http.StatusCreated, submitRequest(t, clientRouter).Code)

	var request models.SellerRequest
	require.NoError(t, db.First(&request).Error)

	adminRouter := setupSellerRouter(db, admin)
	require.Equal(t, http.StatusOK, decideRequest(t, adminRouter, request.ID, "rejected").Code)

	w := decideRequest(t, adminRouter, request.ID, "approved")
	assert.Equal(t, http.StatusBadRequest, w.Code, "decisions are terminal")

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", client.ID).Error)
	assert.Equal(t, models.RoleClient, user.Role)
}

func TestDecideValidatesStatus(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "aida", models.RoleClient)
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)

	clientRouter := setupSellerRouter(db, client)
	require.Equal(t, http.StatusCreated, submitRequest(t, clientRouter).Code)

	var request models.SellerRequest
	require.NoError(t, db.First(&request).Error)

	adminRouter := setupSellerRouter(db, admin)
	w := decideRequest(t, adminRouter, request.ID, "pending")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = decideRequest(t, adminRouter, request.ID, "banana")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// still pending, still decidable
	require.NoError(t, db.First(&request, request.ID).Error)
	assert.Equal(t, models.SellerRequestPending, request.Status)
}

func TestApprovedSellerCanCreateProducts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "erlan", models.RoleClient)
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)

	clientRouter := setupSellerRouter(db, client)
	require.Equal(t, http.StatusCreated, submitRequest(t, clientRouter).Code)

	var request models.SellerRequest
	require.NoError(t, db.First(&request).Error)

	adminRouter := setupSellerRouter(db, admin)
	require.Equal(t, http.StatusOK, decideRequest(t, adminRouter, request.ID, "approved").Code)

	var promoted models.User
	require.NoError(t, db.First(&promoted, "id = ?", client.ID).Error)

	category := models.Category{CategoryName: "молочные"}
	require.NoError(t, db.Create(&category).Error)
	sub := models.SubCategory{CategoryID: category.ID, SubCategoryName: "сыры"}
	require.NoError(t, db.Create(&sub).Error)

	productRouter := testutil.NewRouter()
	sellerGroup := productRouter.Group("/", testutil.AuthAs(promoted),
		middleware.RequireRole(models.RoleSeller))
	sellerGroup.POST("/products_create/", catalogControllers.CreateProduct(db))

	body := fmt.Sprintf(`{"product_subcategory": %d, "product_name": "брынза", "price": 320}`, sub.ID)
	req := httptest.NewRequest(http.MethodPost, "/products_create/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	productRouter.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var product models.Product
	require.NoError(t, db.First(&product).Error)

	var store models.Store
	require.NoError(t, db.First(&store, "store_owner_id = ?", client.ID).Error)
	assert.Equal(t, store.ID, product.StoreID)
}
