package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
)

type PlaceOrderInput struct {
	Address     string `json:"address" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// POST /orders/
//
// Snapshots the caller's cart into an order: price, quantity, address
// and phone are copied into the items, then the cart is emptied. The
// whole sequence is one transaction.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			order = models.Order{
				CustomerID: userID,
				Status:     models.OrderStatusPending,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			for _, item := range cart.Items {
				orderItem := models.OrderItem{
					OrderID:     order.ID,
					ProductID:   item.ProductID,
					Address:     input.Address,
					Quantity:    item.Quantity,
					Price:       item.Product.Price,
					PhoneNumber: input.PhoneNumber,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}
			}

			return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		if err := db.Preload("Items").First(&order, order.ID).Error; err == nil {
			broadcastNewOrder(order)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/
//
// Customers see their own orders, admins see everything.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		roleVal, _ := c.Get("user_role")
		role, _ := roleVal.(models.Role)

		query := db.Preload("Items").Order("created_at desc")
		if !role.CanModerate() {
			query = query.Where("customer_id = ?", userID)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /order-items/
func GetOrderItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		roleVal, _ := c.Get("user_role")
		role, _ := roleVal.(models.Role)

		query := db.Model(&models.OrderItem{})
		if !role.CanModerate() {
			query = query.Where(
				"order_id IN (SELECT id FROM orders WHERE customer_id = ?)", userID)
		}

		var items []models.OrderItem
		if err := query.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// PATCH /admin/orders/:id  (admin only)
//
// The ledger is immutable after creation apart from the status label.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !input.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := db.Model(&order).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
