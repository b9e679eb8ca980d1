package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// Init sets up the Firebase app used to verify Google ID tokens. Called once
// from main before routes are served.
func Init(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return errors.New("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		return err
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	return err
}

// AdminLoginHandler exchanges a Google ID token for a session cookie.
// Unknown emails are registered unapproved and turned away until the super
// admin approves them.
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		if firebaseAuth == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication not configured"})
			return
		}

		ctx := c.Request.Context()

		// Verify the token and check for revocation
		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}
		if token.Audience != projectID {
			log.Printf("❌ Token audience mismatch: got %q", token.Audience)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		// Super admin shortcut
		if email == os.Getenv("SUPER_ADMIN_EMAIL") {
			issueSessionAndRespond(c, email, "superadmin", name, picture)
			return
		}

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			admin = models.Admin{
				Email:    email,
				Name:     name,
				Picture:  picture,
				Approved: false,
			}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			log.Printf("📝 New admin registered: %s (pending approval)", email)
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// Keep the stored profile current
		if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin info"})
			return
		}

		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		issueSessionAndRespond(c, email, "admin", name, picture)
	}
}

// VerifyHandler reports the identity behind the current session cookie.
func VerifyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := SessionFromRequest(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"email":   claims["email"],
			"role":    claims["role"],
			"name":    claims["name"],
			"picture": claims["picture"],
		})
	}
}

// LogoutHandler clears the session cookie.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ClearSessionCookie(c.Writer)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func issueSessionAndRespond(c *gin.Context, email, role, name, picture string) {
	token, err := IssueSession(email, role, name, picture)
	if err != nil {
		log.Printf("❌ Failed to sign session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	SetSessionCookie(c.Writer, token)
	c.JSON(http.StatusOK, gin.H{
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}
