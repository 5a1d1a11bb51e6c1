package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
	"github.com/Bilal010108/Halal-Market/testutil"
)

func setupOrderRouter(db *gorm.DB, user models.User) *gin.Engine {
	r := testutil.NewRouter()
	g := r.Group("/", testutil.AuthAs(user))
	g.POST("/orders/", PlaceOrder(db))
	g.GET("/orders/", GetOrders(db))
	g.GET("/order-items/", GetOrderItems(db))
	return r
}

func placeOrder(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	body := `{"address": "Бишкек, Чуй 1", "phone_number": "+996700112233"}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := testutil.OpenTestDB(t)
	seller := testutil.CreateUser(t, db, "seller1", models.RoleSeller)
	store := testutil.CreateStore(t, db, seller)
	product := testutil.CreateProduct(t, db, store, "lamb", 800)
	client := testutil.CreateUser(t, db, "client1", models.RoleClient)

	cart := models.Cart{UserID: client.ID}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: cart.ID, ProductID: product.ID, Quantity: 2,
	}).Error)

	r := setupOrderRouter(db, client)
	w := placeOrder(t, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var items []models.OrderItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 800.0, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Бишкек, Чуй 1", items[0].Address)
	assert.Equal(t, "+996700112233", items[0].PhoneNumber)

	// the cart is emptied
	var cartCount int64
	db.Model(&models.CartItem{}).Count(&cartCount)
	assert.Zero(t, cartCount)

	// a later price change does not touch the ledger
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).Update("price", 1200).Error)
	require.NoError(t, db.Find(&items).Error)
	assert.Equal(t, 800.0, items[0].Price)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "client1", models.RoleClient)
	r := setupOrderRouter(db, client)

	w := placeOrder(t, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrdersScopedToCustomer(t *testing.T) {
	db := testutil.OpenTestDB(t)
	seller := testutil.CreateUser(t, db, "seller1", models.RoleSeller)
	store := testutil.CreateStore(t, db, seller)
	product := testutil.CreateProduct(t, db, store, "plov", 250)

	alice := testutil.CreateUser(t, db, "alice", models.RoleClient)
	bob := testutil.CreateUser(t, db, "bob", models.RoleClient)

	for _, u := range []models.User{alice, bob} {
		cart := models.Cart{UserID: u.ID}
		require.NoError(t, db.Create(&cart).Error)
		require.NoError(t, db.Create(&models.CartItem{
			CartID: cart.ID, ProductID: product.ID, Quantity: 1,
		}).Error)
		require.Equal(t, http.StatusCreated, placeOrder(t, setupOrderRouter(db, u)).Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
	w := httptest.NewRecorder()
	setupOrderRouter(db, alice).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, alice.ID, orders[0].CustomerID)

	// admins see everything
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)
	w = httptest.NewRecorder()
	setupOrderRouter(db, admin).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := testutil.OpenTestDB(t)
	client := testutil.CreateUser(t, db, "client1", models.RoleClient)
	order := models.Order{CustomerID: client.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)
	r := testutil.NewRouter()
	g := r.Group("/", testutil.AuthAs(admin))
	g.PATCH("/admin/orders/:id", UpdateOrderStatus(db))

	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/1",
		strings.NewReader(`{"status": "shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	req = httptest.NewRequest(http.MethodPatch, "/admin/orders/1",
		strings.NewReader(`{"status": "teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
