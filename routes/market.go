package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/Bilal010108/Halal-Market/controllers/catalog"
	reviewControllers "github.com/Bilal010108/Halal-Market/controllers/review"
	storeControllers "github.com/Bilal010108/Halal-Market/controllers/store"
	userControllers "github.com/Bilal010108/Halal-Market/controllers/user"
	"github.com/Bilal010108/Halal-Market/models"
)

// SetupMarketRoutes registers the public, read-only catalog surface.
func SetupMarketRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── User listings ────────────────
	r.GET("/clients/", userControllers.ListByRole(db, models.RoleClient))
	r.GET("/sellers/", userControllers.ListByRole(db, models.RoleSeller))
	r.GET("/admins/", userControllers.ListByRole(db, models.RoleAdmin))

	// ──────────────── Stores ────────────────
	r.GET("/stores/", storeControllers.GetStores(db))
	r.GET("/stores/:id", storeControllers.GetStore(db))

	// ──────────────── Categories ────────────────
	r.GET("/categories/", catalogControllers.GetCategories(db))
	r.GET("/categories/:id", catalogControllers.GetCategory(db))
	r.GET("/subcategories/", catalogControllers.GetSubCategories(db))
	r.GET("/subcategories/:id", catalogControllers.GetSubCategory(db))

	// ──────────────── Products ────────────────
	r.GET("/products/", catalogControllers.GetProducts(db))
	r.GET("/products/:id", catalogControllers.GetProduct(db))
	r.GET("/productsimage/", catalogControllers.GetProductImages(db))

	// ──────────────── Sales ────────────────
	r.GET("/sales/", catalogControllers.GetActiveSales(db))
	r.GET("/sales/:id", catalogControllers.GetSale(db))

	// ──────────────── Reviews & Likes ────────────────
	r.GET("/reviews/", reviewControllers.GetReviews(db))
	r.GET("/reviews/:id", reviewControllers.GetReview(db))
	r.GET("/comments/", reviewControllers.GetLikes(db))
}
