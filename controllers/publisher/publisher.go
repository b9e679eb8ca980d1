package publishercontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

// CreatePublisher inserts a publisher. The name is both display value and
// row key, so duplicates collapse into a conflict.
func CreatePublisher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		publisher := models.Publisher{Name: strings.TrimSpace(input.Name)}
		if err := db.Create(&publisher).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Publisher already exists"})
			return
		}
		c.JSON(http.StatusCreated, publisher)
	}
}

func GetAllPublishers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var publishers []models.Publisher
		if err := db.Order("name asc").Find(&publishers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch publishers"})
			return
		}
		c.JSON(http.StatusOK, publishers)
	}
}

// DeletePublisher removes a publisher and clears the reference from its
// products.
func DeletePublisher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Product{}).
				Where("publisher = ?", name).
				Update("publisher", "").Error; err != nil {
				return err
			}
			result := tx.Delete(&models.Publisher{Name: name})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Publisher not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete publisher"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Publisher deleted successfully"})
	}
}
