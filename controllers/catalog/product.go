package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
)

type ProductInput struct {
	SubCategoryID uint    `json:"product_subcategory" binding:"required"`
	ProductName   string  `json:"product_name" binding:"required"`
	Country       string  `json:"country"`
	Ingredients   string  `json:"ingredients"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	BestBefore    string  `json:"best_before_date"`
	Action        string  `json:"action"`
	Quantity      string  `json:"quantity"`
	Description   string  `json:"description"`
}

type ProductImageInput struct {
	ProductID uint   `json:"product" binding:"required"`
	ImageURL  string `json:"product_image" binding:"required"`
}

type productListItem struct {
	ID          uint                  `json:"id"`
	Store       gin.H                 `json:"store"`
	ProductName string                `json:"product_name"`
	Images      []models.ProductImage `json:"images"`
	Price       float64               `json:"price"`
	AvgRating   float64               `json:"avg_rating"`
	RatingCount string                `json:"rating_count"`
	GoodRate    string                `json:"good_rate"`
}

func toProductListItem(db *gorm.DB, p models.Product) productListItem {
	return productListItem{
		ID:          p.ID,
		Store:       gin.H{"id": p.Store.ID, "store_name": p.Store.StoreName},
		ProductName: p.ProductName,
		Images:      p.Images,
		Price:       p.Price,
		AvgRating:   models.ProductAvgRating(db, p.ID),
		RatingCount: models.ProductRatingCountLabel(db, p.ID),
		GoodRate:    models.ProductGoodRate(db, p.ID),
	}
}

// POST /products_create/  (seller only, attached to the caller's store)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var store models.Store
		if err := db.Where("store_owner_id = ?", userID).First(&store).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You don't have a store"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var sub models.SubCategory
		if err := db.First(&sub, "id = ?", input.SubCategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not exist"})
			return
		}

		product := models.Product{
			StoreID:       store.ID,
			SubCategoryID: input.SubCategoryID,
			ProductName:   input.ProductName,
			Country:       input.Country,
			Ingredients:   input.Ingredients,
			Price:         input.Price,
			BestBefore:    input.BestBefore,
			Action:        input.Action,
			Quantity:      input.Quantity,
			Description:   input.Description,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GET /products/
//
// Supports ?subcategory=, ?price_gt=, ?price_lt= and ?search= over the
// product name.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Store").Preload("Images").Model(&models.Product{})

		if sub := c.Query("subcategory"); sub != "" {
			query = query.Where("sub_category_id = ?", sub)
		}
		if gt := c.Query("price_gt"); gt != "" {
			if v, err := strconv.ParseFloat(gt, 64); err == nil {
				query = query.Where("price > ?", v)
			}
		}
		if lt := c.Query("price_lt"); lt != "" {
			if v, err := strconv.ParseFloat(lt, 64); err == nil {
				query = query.Where("price < ?", v)
			}
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("product_name LIKE ?", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		out := make([]productListItem, 0, len(products))
		for _, p := range products {
			out = append(out, toProductListItem(db, p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /products/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Store").Preload("Images").
			First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":               product.ID,
			"store":            gin.H{"id": product.Store.ID, "store_name": product.Store.StoreName},
			"product_name":     product.ProductName,
			"images":           product.Images,
			"price":            product.Price,
			"country":          product.Country,
			"ingredients":      product.Ingredients,
			"best_before_date": product.BestBefore,
			"action":           product.Action,
			"quantity":         product.Quantity,
			"description":      product.Description,
			"avg_rating":       models.ProductAvgRating(db, product.ID),
			"rating_count":     models.ProductRatingCountLabel(db, product.ID),
			"good_rate":        models.ProductGoodRate(db, product.ID),
		})
	}
}

// PUT /products/:id  (seller only, own store)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var product models.Product
		if err := db.Joins("JOIN stores ON stores.id = products.store_id").
			Where("products.id = ? AND stores.store_owner_id = ?", c.Param("id"), userID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.SubCategoryID = input.SubCategoryID
		product.ProductName = input.ProductName
		product.Country = input.Country
		product.Ingredients = input.Ingredients
		product.Price = input.Price
		product.BestBefore = input.BestBefore
		product.Action = input.Action
		product.Quantity = input.Quantity
		product.Description = input.Description
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /products/:id  (seller only, own store)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		result := db.Where(
			"id = ? AND store_id IN (SELECT id FROM stores WHERE store_owner_id = ?)",
			c.Param("id"), userID,
		).Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// POST /productsimage_create/  (seller only)
func CreateProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		image := models.ProductImage{
			ProductID: input.ProductID,
			ImageURL:  input.ImageURL,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product image"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// GET /productsimage/
func GetProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []models.ProductImage
		if err := db.Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product images"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// DELETE /productsimage/:id  (seller only)
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.ProductImage{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product image"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product image deleted"})
	}
}
