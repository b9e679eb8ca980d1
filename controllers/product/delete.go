package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"github.com/neokudilonga-dev/neokudilonga-api/storage"
	"gorm.io/gorm"
)

// DeleteProduct removes a product, its reading-plan links and image rows,
// then attempts to delete the stored files from whichever backend each URL
// matches. Storage failures are logged, not surfaced: the catalogue row is
// already gone.
func DeleteProduct(db *gorm.DB, store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ReadingPlanItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		for _, img := range product.Images {
			if err := store.DeleteImage(c.Request.Context(), img.URL); err != nil {
				log.Printf("⚠️ Failed to delete image %s: %v", img.URL, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
