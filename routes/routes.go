package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/storage"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public shop,
// auth, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *storage.Store) {
	// 1️⃣ Public shop routes (no middleware)
	SetupPublicRoutes(r, db)

	// 2️⃣ Auth routes (Google sign-in, session verify/logout)
	SetupAuthRoutes(r, db)

	// 3️⃣ Admin routes (session-cookie-protected)
	SetupAdminRoutes(r, db, store)
}
