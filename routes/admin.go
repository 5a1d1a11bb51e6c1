package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/Bilal010108/Halal-Market/controllers/catalog"
	orderControllers "github.com/Bilal010108/Halal-Market/controllers/order"
	sellerControllers "github.com/Bilal010108/Halal-Market/controllers/seller"
	"github.com/Bilal010108/Halal-Market/middleware"
	"github.com/Bilal010108/Halal-Market/models"
)

// SetupAdminRoutes registers all admin-only endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/")
	admin.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		// ─────────── Seller Onboarding Decisions ───────────
		admin.GET("/seller_requests/", sellerControllers.GetSellerRequests(db))
		admin.PATCH("/seller_requests/:id", sellerControllers.DecideSellerRequest(db))

		// ─────────── Category Management ───────────
		admin.POST("/categories/", catalogControllers.CreateCategory(db))
		admin.PUT("/categories/:id", catalogControllers.UpdateCategory(db))
		admin.DELETE("/categories/:id", catalogControllers.DeleteCategory(db))
		admin.POST("/subcategories/", catalogControllers.CreateSubCategory(db))
		admin.PUT("/subcategories/:id", catalogControllers.UpdateSubCategory(db))
		admin.DELETE("/subcategories/:id", catalogControllers.DeleteSubCategory(db))

		// ─────────── Orders ───────────
		admin.PATCH("/admin/orders/:id", orderControllers.UpdateOrderStatus(db))
		admin.GET("/admin/order-feed", orderControllers.OrderFeedHandler)

		// ─────────── Catalog Export ───────────
		admin.GET("/admin/products/export-excel", catalogControllers.ExportProductsToExcel(db))
	}
}
