package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/models"
)

type UpdateUserInput struct {
	Username    *string `json:"username"`
	PhoneNumber *string `json:"phone_number"`
	ProfileIcon *string `json:"profile_icon"`
}

type userListItem struct {
	UserID      string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// GET /user/
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.Preload("Store").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Username != nil {
			updates["username"] = *input.Username
		}
		if input.PhoneNumber != nil {
			updates["phone_number"] = *input.PhoneNumber
		}
		if input.ProfileIcon != nil {
			updates["profile_icon"] = *input.ProfileIcon
		}
		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": "Username or phone already taken"})
				return
			}
		}
		c.JSON(http.StatusOK, user)
	}
}

// ListByRole serves /clients/, /sellers/ and /admins/.
func ListByRole(db *gorm.DB, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Where("role = ?", role).
			Select("id", "username", "email", "phone_number").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		out := make([]userListItem, 0, len(users))
		for _, u := range users {
			out = append(out, userListItem{
				UserID:      u.ID,
				Username:    u.Username,
				Email:       u.Email,
				PhoneNumber: u.PhoneNumber,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
