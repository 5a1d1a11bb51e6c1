package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
)

type CategoryInput struct {
	CategoryName  string `json:"category_name" binding:"required"`
	CategoryImage string `json:"category_image"`
}

type SubCategoryInput struct {
	CategoryID       uint   `json:"category_id" binding:"required"`
	SubCategoryName  string `json:"subcategory_name" binding:"required"`
	SubCategoryImage string `json:"subcategory_image"`
}

// POST /categories/  (admin only)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			CategoryName:  input.CategoryName,
			CategoryImage: input.CategoryImage,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GET /categories/
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /categories/:id  (with subcategories)
func GetCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.Preload("SubCategories").First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// PUT /categories/:id  (admin only)
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category.CategoryName = input.CategoryName
		category.CategoryImage = input.CategoryImage
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /categories/:id  (admin only)
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Category{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// POST /subcategories/  (admin only)
func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		sub := models.SubCategory{
			CategoryID:       input.CategoryID,
			SubCategoryName:  input.SubCategoryName,
			SubCategoryImage: input.SubCategoryImage,
		}
		if err := db.Create(&sub).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Subcategory already exists"})
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

// PUT /subcategories/:id  (admin only)
func UpdateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}

		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		sub.CategoryID = input.CategoryID
		sub.SubCategoryName = input.SubCategoryName
		sub.SubCategoryImage = input.SubCategoryImage
		if err := db.Save(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subcategory"})
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

// GET /subcategories/
func GetSubCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subs []models.SubCategory
		if err := db.Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategories"})
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

// GET /subcategories/:id
func GetSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

// DELETE /subcategories/:id  (admin only)
func DeleteSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.SubCategory{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
	}
}
