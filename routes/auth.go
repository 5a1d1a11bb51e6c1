package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bilal010108/Halal-Market/auth"
)

// SetupAuthRoutes registers registration and login.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register/", auth.Register(db))
	r.POST("/login/", auth.Login(db))
}
