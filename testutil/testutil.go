package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
)

// OpenTestDB opens an isolated in-memory database and migrates the full
// schema. Each test gets its own database, named after the test so
// shared-cache connections stay within one test.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

// AuthAs stands in for the JWT middleware: it stashes the given user's
// identity in the request context.
func AuthAs(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// NewRouter returns a quiet gin engine for handler tests.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()

	id := uuid.NewString()
	user := models.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PhoneNumber:  "+996-" + id[:13],
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateStore(t *testing.T, db *gorm.DB, owner models.User) models.Store {
	t.Helper()

	store := models.Store{
		StoreOwnerID: owner.ID,
		StoreName:    "Магазин " + owner.Username,
	}
	require.NoError(t, db.Create(&store).Error)
	return store
}

func CreateProduct(t *testing.T, db *gorm.DB, store models.Store, name string, price float64) models.Product {
	t.Helper()

	category := models.Category{CategoryName: "cat-" + name}
	require.NoError(t, db.Create(&category).Error)
	sub := models.SubCategory{CategoryID: category.ID, SubCategoryName: "sub-" + name}
	require.NoError(t, db.Create(&sub).Error)

	product := models.Product{
		StoreID:       store.ID,
		SubCategoryID: sub.ID,
		ProductName:   name,
		Price:         price,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
