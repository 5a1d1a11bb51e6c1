package storeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Bilal010108/Halal-Market/models"
)

type StoreInput struct {
	StoreName        string `json:"store_name" binding:"required"`
	StoreImage       string `json:"store_image"`
	StoreDescription string `json:"store_description"`
}

type UpdateStoreInput struct {
	StoreName        *string `json:"store_name"`
	StoreImage       *string `json:"store_image"`
	StoreDescription *string `json:"store_description"`
}

// POST /stores_create/  (seller only)
func CreateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input StoreInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := models.Store{
			StoreOwnerID:     userID,
			StoreName:        input.StoreName,
			StoreImage:       input.StoreImage,
			StoreDescription: input.StoreDescription,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_owner_id"}},
			DoNothing: true,
		}).Create(&store)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a store"})
			return
		}

		c.JSON(http.StatusCreated, store)
	}
}

// GET /stores/
func GetStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stores []models.Store
		if err := db.Find(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		c.JSON(http.StatusOK, stores)
	}
}

// GET /stores/:id
func GetStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store models.Store
		if err := db.Preload("Products").First(&store, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// PUT /stores/:id  (owner only)
func UpdateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var store models.Store
		if err := db.Where("id = ? AND store_owner_id = ?", c.Param("id"), userID).
			First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}

		var input UpdateStoreInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.StoreName != nil {
			updates["store_name"] = *input.StoreName
		}
		if input.StoreImage != nil {
			updates["store_image"] = *input.StoreImage
		}
		if input.StoreDescription != nil {
			updates["store_description"] = *input.StoreDescription
		}
		if len(updates) > 0 {
			if err := db.Model(&store).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
				return
			}
		}

		c.JSON(http.StatusOK, store)
	}
}
