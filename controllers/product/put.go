package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

// UpdateProduct applies a partial update. Absent fields keep their value;
// images and reading-plan lists replace the stored set when provided.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Images").Preload("ReadingPlan").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !input.Name.IsZero() {
			product.Name = input.Name
		}
		if !input.Description.IsZero() {
			product.Description = input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
				return
			}
			product.Price = *input.Price
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
				return
			}
			product.Stock = *input.Stock
		}
		if input.Type != "" {
			if input.Type != models.ProductTypeBook && input.Type != models.ProductTypeGame {
				c.JSON(http.StatusBadRequest, gin.H{"error": "type must be book or game"})
				return
			}
			product.Type = input.Type
		}
		if input.StockStatus != "" {
			switch input.StockStatus {
			case models.StockStatusInStock, models.StockStatusOutOfStock, models.StockStatusSoldOut:
				product.StockStatus = input.StockStatus
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock_status"})
				return
			}
		}
		if input.Publisher != nil {
			product.Publisher = *input.Publisher
		}
		if input.CategoryID != nil && *input.CategoryID != 0 {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = category.ID
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if input.Images != nil {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				product.Images = nil
				for _, u := range input.Images {
					if u != "" {
						product.Images = append(product.Images, models.ProductImage{ProductID: product.ID, URL: u})
					}
				}
			}
			if input.ReadingPlan != nil {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ReadingPlanItem{}).Error; err != nil {
					return err
				}
				product.ReadingPlan = nil
				for _, p := range input.ReadingPlan {
					status := p.Status
					if status == "" {
						status = models.PlanStatusMandatory
					}
					product.ReadingPlan = append(product.ReadingPlan, models.ReadingPlanItem{
						ProductID: product.ID,
						SchoolID:  p.SchoolID,
						Grade:     p.Grade,
						Status:    status,
					})
				}
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
