package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Bilal010108/Halal-Market/models"
)

type ReviewInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	Photo1    string `json:"photo1"`
	Photo2    string `json:"photo2"`
	Photo3    string `json:"photo3"`
	Photo4    string `json:"photo4"`
	ParentID  *uint  `json:"parent"`
}

type CommentLikeInput struct {
	ReviewID uint `json:"review" binding:"required"`
}

type replyResponse struct {
	ID             uint   `json:"id"`
	UserName       string `json:"user_name"`
	Comment        string `json:"comment"`
	Rating         int    `json:"rating"`
	LikesCount     int64  `json:"likes_count"`
	ParentUserName string `json:"parent_user_name"`
}

type reviewResponse struct {
	ID         uint            `json:"id"`
	User       gin.H           `json:"user"`
	Product    gin.H           `json:"product"`
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment"`
	Photo1     string          `json:"photo1"`
	Photo2     string          `json:"photo2"`
	Photo3     string          `json:"photo3"`
	Photo4     string          `json:"photo4"`
	LikesCount int64           `json:"likes_count"`
	CreatedAt  string          `json:"created_at"`
	Parent     *uint           `json:"parent"`
	Replies    []replyResponse `json:"replies"`
}

// listReplies materializes the direct children of a review. Deeper
// nesting stays in storage but is never returned.
func listReplies(db *gorm.DB, parent models.Review) ([]replyResponse, error) {
	var replies []models.Review
	if err := db.Preload("User").Where("parent_id = ?", parent.ID).Find(&replies).Error; err != nil {
		return nil, err
	}

	out := make([]replyResponse, 0, len(replies))
	for _, reply := range replies {
		out = append(out, replyResponse{
			ID:             reply.ID,
			UserName:       reply.User.Username,
			Comment:        reply.Comment,
			Rating:         reply.Rating,
			LikesCount:     models.ReviewLikesCount(db, reply.ID),
			ParentUserName: parent.User.Username,
		})
	}
	return out, nil
}

func toReviewResponse(db *gorm.DB, review models.Review) (reviewResponse, error) {
	replies, err := listReplies(db, review)
	if err != nil {
		return reviewResponse{}, err
	}
	return reviewResponse{
		ID: review.ID,
		User: gin.H{
			"id":           review.User.ID,
			"username":     review.User.Username,
			"email":        review.User.Email,
			"phone_number": review.User.PhoneNumber,
		},
		Product: gin.H{
			"id":           review.Product.ID,
			"product_name": review.Product.ProductName,
		},
		Rating:     review.Rating,
		Comment:    review.Comment,
		Photo1:     review.Photo1,
		Photo2:     review.Photo2,
		Photo3:     review.Photo3,
		Photo4:     review.Photo4,
		LikesCount: models.ReviewLikesCount(db, review.ID),
		CreatedAt:  review.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Parent:     review.ParentID,
		Replies:    replies,
	}, nil
}

// POST /reviews/
//
// With a parent the new row is a reply attached under that review. A
// reply still stores product and rating; whether those should feed
// anything is unresolved upstream, so they are accepted and kept out of
// the product aggregates.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		if input.ParentID != nil {
			var parent models.Review
			if err := db.First(&parent, "id = ?", *input.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent review does not exist"})
				return
			}
		}

		review := models.Review{
			UserID:    userID,
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			Photo1:    input.Photo1,
			Photo2:    input.Photo2,
			Photo3:    input.Photo3,
			Photo4:    input.Photo4,
			ParentID:  input.ParentID,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		if err := db.Preload("User").Preload("Product").First(&review, review.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		resp, err := toReviewResponse(db, review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build review"})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// GET /reviews/
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("User").Preload("Product").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		out := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			resp, err := toReviewResponse(db, review)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build reviews"})
				return
			}
			out = append(out, resp)
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /reviews/:id
func GetReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := db.Preload("User").Preload("Product").
			First(&review, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		resp, err := toReviewResponse(db, review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build review"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /comments/
//
// Likes a review. There is no toggle: a second like by the same user is
// a conflict, un-liking is the separate delete endpoint.
func LikeReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CommentLikeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var review models.Review
		if err := db.First(&review, "id = ?", input.ReviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Review does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate review"})
			return
		}

		like := models.CommentLike{
			ReviewID: review.ID,
			UserID:   userID,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&like)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Review already liked"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":          like.ID,
			"review":      like.ReviewID,
			"user":        like.UserID,
			"total_likes": models.ReviewLikesCount(db, review.ID),
		})
	}
}

// GET /comments/
func GetLikes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var likes []models.CommentLike
		if err := db.Preload("User").Find(&likes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
			return
		}

		out := make([]gin.H, 0, len(likes))
		for _, like := range likes {
			out = append(out, gin.H{
				"id":         like.ID,
				"review":     like.ReviewID,
				"user":       like.UserID,
				"user_name":  like.User.Username,
				"created_at": like.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}

// DELETE /comments/:id
func DeleteLike(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			Delete(&models.CommentLike{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete like"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Like deleted"})
	}
}
