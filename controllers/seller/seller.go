package sellerControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Bilal010108/Halal-Market/models"
)

type SellerRequestInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Message     string `json:"message"`
}

type DecideInput struct {
	Status models.SellerRequestStatus `json:"status" binding:"required"`
}

type sellerRequestResponse struct {
	ID          uint                       `json:"id"`
	User        string                     `json:"user"`
	PhoneNumber string                     `json:"phone_number"`
	Message     string                     `json:"message"`
	Status      models.SellerRequestStatus `json:"status"`
}

// POST /seller_requests/
//
// One request per user, ever: the unique index on user_id rejects a
// resubmit even after a decision.
func SubmitSellerRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input SellerRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		request := models.SellerRequest{
			UserID:      userID,
			PhoneNumber: input.PhoneNumber,
			Message:     input.Message,
			Status:      models.SellerRequestPending,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&request)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Request already sent"})
			return
		}

		c.JSON(http.StatusCreated, sellerRequestResponse{
			ID:          request.ID,
			User:        request.UserID,
			PhoneNumber: request.PhoneNumber,
			Message:     request.Message,
			Status:      request.Status,
		})
	}
}

// GET /seller_requests/
func GetSellerRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.SellerRequest
		if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// PATCH /seller_requests/:id
//
// pending → approved | rejected, both terminal. Approval runs as one
// transaction: request status, role promotion and store creation either
// all land or none do. The status flip is a guarded UPDATE so two
// concurrent decisions cannot both pass the pending check.
func DecideSellerRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DecideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Status != models.SellerRequestApproved && input.Status != models.SellerRequestRejected {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var request models.SellerRequest
		if err := db.Preload("User").First(&request, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		if request.Status.Decided() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request already processed"})
			return
		}

		alreadyProcessed := false
		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&models.SellerRequest{}).
				Where("id = ? AND status = ?", request.ID, models.SellerRequestPending).
				Update("status", input.Status)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				alreadyProcessed = true
				return nil
			}

			if input.Status != models.SellerRequestApproved {
				return nil
			}

			if err := tx.Model(&models.User{}).
				Where("id = ?", request.UserID).
				Update("role", models.RoleSeller).Error; err != nil {
				return err
			}

			store := models.Store{
				StoreOwnerID: request.UserID,
				StoreName:    fmt.Sprintf("Магазин %s", request.User.Username),
			}
			return tx.Create(&store).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
			return
		}
		if alreadyProcessed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request already processed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": input.Status})
	}
}
