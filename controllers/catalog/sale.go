package catalogControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
)

// Sale windows travel as DD-MM-YYYY on the wire.
const saleDateLayout = "02-01-2006"

type SaleInput struct {
	ProductID       uint   `json:"product" binding:"required"`
	IsActive        bool   `json:"is_active"`
	Description1    string `json:"description1"`
	Description2    string `json:"description2"`
	DiscountPercent int    `json:"discount_percent" binding:"min=0,max=100"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
}

type saleResponse struct {
	ID                uint    `json:"id"`
	ProductID         uint    `json:"product"`
	ProductName       string  `json:"product_name"`
	ProductPrice      float64 `json:"product_price"`
	DiscountPercent   int     `json:"discount_percent"`
	DiscountedPrice   float64 `json:"discounted_price"`
	Description1      string  `json:"description1"`
	Description2      string  `json:"description2"`
	IsActive          bool    `json:"is_active"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	IsCurrentlyActive bool    `json:"is_currently_active"`
}

func toSaleResponse(sale models.Sale, now time.Time) saleResponse {
	return saleResponse{
		ID:                sale.ID,
		ProductID:         sale.ProductID,
		ProductName:       sale.Product.ProductName,
		ProductPrice:      sale.Product.Price,
		DiscountPercent:   sale.DiscountPercent,
		DiscountedPrice:   sale.DiscountedPrice(sale.Product.Price),
		Description1:      sale.Description1,
		Description2:      sale.Description2,
		IsActive:          sale.IsActive,
		StartDate:         sale.StartDate.Format(saleDateLayout),
		EndDate:           sale.EndDate.Format(saleDateLayout),
		IsCurrentlyActive: sale.IsCurrentlyActive(now),
	}
}

// POST /sales/  (seller only)
func CreateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		start, err := time.Parse(saleDateLayout, input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected DD-MM-YYYY"})
			return
		}
		end, err := time.Parse(saleDateLayout, input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected DD-MM-YYYY"})
			return
		}
		if end.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date is before start_date"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		sale := models.Sale{
			ProductID:       input.ProductID,
			IsActive:        input.IsActive,
			Description1:    input.Description1,
			Description2:    input.Description2,
			DiscountPercent: input.DiscountPercent,
			StartDate:       start,
			EndDate:         end,
			Product:         product,
		}
		if err := db.Create(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
			return
		}
		c.JSON(http.StatusCreated, toSaleResponse(sale, time.Now()))
	}
}

// GET /sales/
//
// Lists currently running sales only: flag set and now within the window.
func GetActiveSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		var sales []models.Sale
		if err := db.Preload("Product").
			Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
			Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		out := make([]saleResponse, 0, len(sales))
		for _, sale := range sales {
			out = append(out, toSaleResponse(sale, now))
		}
		c.JSON(http.StatusOK, out)
	}
}

// PUT /sales/:id  (seller only)
func UpdateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sale
		if err := db.Preload("Product").First(&sale, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}

		var input SaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		start, err := time.Parse(saleDateLayout, input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected DD-MM-YYYY"})
			return
		}
		end, err := time.Parse(saleDateLayout, input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected DD-MM-YYYY"})
			return
		}
		if end.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date is before start_date"})
			return
		}

		sale.IsActive = input.IsActive
		sale.Description1 = input.Description1
		sale.Description2 = input.Description2
		sale.DiscountPercent = input.DiscountPercent
		sale.StartDate = start
		sale.EndDate = end
		if err := db.Save(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale"})
			return
		}
		c.JSON(http.StatusOK, toSaleResponse(sale, time.Now()))
	}
}

// GET /sales/:id
func GetSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sale
		if err := db.Preload("Product").First(&sale, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusOK, toSaleResponse(sale, time.Now()))
	}
}

// DELETE /sales/:id  (seller only)
func DeleteSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Sale{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
	}
}
