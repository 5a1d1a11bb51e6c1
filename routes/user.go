package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Bilal010108/Halal-Market/controllers/cart"
	catalogControllers "github.com/Bilal010108/Halal-Market/controllers/catalog"
	favoriteControllers "github.com/Bilal010108/Halal-Market/controllers/favorite"
	orderControllers "github.com/Bilal010108/Halal-Market/controllers/order"
	reviewControllers "github.com/Bilal010108/Halal-Market/controllers/review"
	sellerControllers "github.com/Bilal010108/Halal-Market/controllers/seller"
	storeControllers "github.com/Bilal010108/Halal-Market/controllers/store"
	userControllers "github.com/Bilal010108/Halal-Market/controllers/user"
	"github.com/Bilal010108/Halal-Market/middleware"
	"github.com/Bilal010108/Halal-Market/models"
)

// SetupUserRoutes registers all JWT-protected endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	authed := r.Group("/")
	authed.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		authed.GET("/user/", userControllers.GetUser(db))
		authed.PUT("/user/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		authed.GET("/cart/", cartControllers.GetCart(db))
		authed.POST("/cart_create/", cartControllers.AddCartItem(db))
		authed.PATCH("/cart/:id", cartControllers.UpdateCartItem(db))
		authed.PUT("/cart/:id", cartControllers.UpdateCartItem(db))
		authed.DELETE("/cart/:id", cartControllers.DeleteCartItem(db))

		// ──────────────── Favorites ────────────────
		authed.GET("/favorite/", favoriteControllers.GetFavorites(db))
		authed.POST("/favorite_create/", favoriteControllers.AddFavoriteProduct(db))
		authed.DELETE("/favorite/:id", favoriteControllers.DeleteFavoriteProduct(db))

		// ──────────────── Reviews & Likes ────────────────
		authed.POST("/reviews/", reviewControllers.CreateReview(db))
		authed.POST("/comments/", reviewControllers.LikeReview(db))
		authed.DELETE("/comments/:id", reviewControllers.DeleteLike(db))

		// ──────────────── Seller Onboarding ────────────────
		authed.POST("/seller_requests/", sellerControllers.SubmitSellerRequest(db))

		// ──────────────── Orders ────────────────
		authed.POST("/orders/", orderControllers.PlaceOrder(db))
		authed.GET("/orders/", orderControllers.GetOrders(db))
		authed.GET("/order-items/", orderControllers.GetOrderItems(db))

		// ──────────────── Seller-only: store & products ────────────────
		sellerOnly := authed.Group("/")
		sellerOnly.Use(middleware.RequireRole(models.RoleSeller))
		{
			sellerOnly.POST("/stores_create/", storeControllers.CreateStore(db))
			sellerOnly.PUT("/stores/:id", storeControllers.UpdateStore(db))

			sellerOnly.POST("/products_create/", catalogControllers.CreateProduct(db))
			sellerOnly.PUT("/products/:id", catalogControllers.UpdateProduct(db))
			sellerOnly.DELETE("/products/:id", catalogControllers.DeleteProduct(db))

			sellerOnly.POST("/productsimage_create/", catalogControllers.CreateProductImage(db))
			sellerOnly.DELETE("/productsimage/:id", catalogControllers.DeleteProductImage(db))

			sellerOnly.POST("/sales/", catalogControllers.CreateSale(db))
			sellerOnly.PUT("/sales/:id", catalogControllers.UpdateSale(db))
			sellerOnly.DELETE("/sales/:id", catalogControllers.DeleteSale(db))
		}
	}
}
