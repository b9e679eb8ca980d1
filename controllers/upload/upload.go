package uploadcontroller

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/storage"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// UploadImage pushes a multipart image to R2 and returns its public URL.
// Filenames are sanitized and timestamped so uploads never collide.
func UploadImage(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
			return
		}
		defer src.Close()

		cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
		key := fmt.Sprintf("products/%d_%s", time.Now().Unix(), cleanName)

		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		url, err := store.UploadR2(c.Request.Context(), key, contentType, src)
		if err != nil {
			log.Printf("❌ R2 upload failed for %s: %v", file.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
			return
		}

		log.Printf("📦 Image uploaded: %s -> %s", file.Filename, url)
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
