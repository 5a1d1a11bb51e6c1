package favoriteControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Bilal010108/Halal-Market/models"
)

type FavoriteProductInput struct {
	ProductID uint `json:"product" binding:"required"`
}

type favoriteProductResponse struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"product"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	CreatedDate  string  `json:"created_date"`
}

func toFavoriteProductResponse(fp models.FavoriteProduct) favoriteProductResponse {
	return favoriteProductResponse{
		ID:           fp.ID,
		ProductID:    fp.ProductID,
		ProductName:  fp.Product.ProductName,
		ProductPrice: fp.Product.Price,
		CreatedDate:  fp.CreatedDate.Format("02-01-2006"),
	}
}

func ensureFavorite(tx *gorm.DB, userID string) (models.Favorite, error) {
	var favorite models.Favorite
	err := tx.Where("user_id = ?", userID).First(&favorite).Error
	if err == nil {
		return favorite, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return favorite, err
	}

	favorite = models.Favorite{UserID: userID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&favorite).Error; err != nil {
		return favorite, err
	}
	if favorite.ID != 0 {
		return favorite, nil
	}
	// lost the race, the row exists now
	err = tx.Where("user_id = ?", userID).First(&favorite).Error
	return favorite, err
}

// POST /favorite_create/
//
// Unlike the cart, a duplicate add does not merge: the second add of the
// same product is rejected. ON CONFLICT DO NOTHING plus the unique index
// makes the duplicate check race-free.
func AddFavoriteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input FavoriteProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var fp models.FavoriteProduct
		duplicate := false
		err := db.Transaction(func(tx *gorm.DB) error {
			favorite, err := ensureFavorite(tx, userID)
			if err != nil {
				return err
			}

			fp = models.FavoriteProduct{
				FavoriteID: favorite.ID,
				ProductID:  product.ID,
			}
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "favorite_id"}, {Name: "product_id"}},
				DoNothing: true,
			}).Create(&fp)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				duplicate = true
				return nil
			}
			return tx.Preload("Product").First(&fp, fp.ID).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		if duplicate {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is already in favorites"})
			return
		}

		c.JSON(http.StatusCreated, toFavoriteProductResponse(fp))
	}
}

// GET /favorite/
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		favorite, err := ensureFavorite(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		var items []models.FavoriteProduct
		if err := db.Preload("Product").Where("favorite_id = ?", favorite.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite items"})
			return
		}

		itemResponses := make([]favoriteProductResponse, 0, len(items))
		for _, item := range items {
			itemResponses = append(itemResponses, toFavoriteProductResponse(item))
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    favorite.ID,
			"items": itemResponses,
		})
	}
}

// DELETE /favorite/:id
func DeleteFavoriteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("id")

		result := db.Where(
			"id = ? AND favorite_id IN (SELECT id FROM favorites WHERE user_id = ?)",
			itemID, userID,
		).Delete(&models.FavoriteProduct{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Favorite deleted"})
	}
}
