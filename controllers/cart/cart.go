package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Bilal010108/Halal-Market/models"
)

type CartItemInput struct {
	ProductID uint `json:"product" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type cartItemResponse struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"product"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
}

func toCartItemResponse(item models.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductName:  item.Product.ProductName,
		ProductPrice: item.Product.Price,
		Quantity:     item.Quantity,
		TotalPrice:   item.TotalPrice(),
	}
}

// ensureCart fetches the caller's cart, creating it on first access. The
// unique index on user_id is the arbiter: a concurrent create loses the
// insert and picks up the surviving row.
func ensureCart(tx *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	cart = models.Cart{UserID: userID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return cart, err
	}
	if cart.ID != 0 {
		return cart, nil
	}
	// lost the race, the row exists now
	err = tx.Where("user_id = ?", userID).First(&cart).Error
	return cart, err
}

// POST /cart_create/
//
// Adds a product to the caller's cart. A second add of the same product
// merges into the existing line item: the upsert increments quantity in
// a single statement, so concurrent adds cannot produce duplicate rows.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var item models.CartItem
		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := ensureCart(tx, userID)
			if err != nil {
				return err
			}

			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity": gorm.Expr("quantity + ?", input.Quantity),
				}),
			}).Create(&item).Error; err != nil {
				return err
			}

			return tx.Preload("Product").
				Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).
				First(&item).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, toCartItemResponse(item))
	}
}

// PATCH /cart/:id
//
// Updates a line item's quantity. Zero or negative removes the item.
// Items outside the caller's cart answer 404 without revealing whether
// they exist.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("id")

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Preload("Product").
			Joins("JOIN carts ON carts.id = cart_items.cart_id").
			Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if *input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		item.Quantity = *input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, toCartItemResponse(item))
	}
}

// DELETE /cart/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("id")

		result := db.Where(
			"id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)",
			itemID, userID,
		).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /cart/
//
// Lazily creates the cart on first access and returns it with a computed
// total.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		cart, err := ensureCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}

		var total float64
		itemResponses := make([]cartItemResponse, 0, len(items))
		for _, item := range items {
			itemResponses = append(itemResponses, toCartItemResponse(item))
			total += item.TotalPrice()
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          cart.ID,
			"user":        cart.UserID,
			"items":       itemResponses,
			"total_price": total,
		})
	}
}
