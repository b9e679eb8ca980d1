package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes wires the Google sign-in flow for the back office.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/api/auth")
	{
		group.POST("/login", auth.AdminLoginHandler(db))
		group.GET("/verify", auth.VerifyHandler())
		group.POST("/logout", auth.LogoutHandler())
	}
}
