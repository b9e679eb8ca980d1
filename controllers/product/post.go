package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

type PlanInput struct {
	SchoolID uint              `json:"school_id" binding:"required"`
	Grade    string            `json:"grade" binding:"required"`
	Status   models.PlanStatus `json:"status"`
}

type ProductInput struct {
	Name        models.LocalizedString `json:"name"`
	Description models.LocalizedString `json:"description"`
	Price       *float64               `json:"price"`
	Stock       *int                   `json:"stock"`
	Type        models.ProductType     `json:"type"`
	StockStatus models.StockStatus     `json:"stock_status"`
	CategoryID  *uint                  `json:"category_id"`
	Publisher   *string                `json:"publisher"`
	Images      []string               `json:"images"`
	ReadingPlan []PlanInput            `json:"reading_plan"`
}

// CreateProduct creates a product with its images and reading-plan links.
// Image files are uploaded separately through /api/upload/r2; the form sends
// only the resulting URLs.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if input.Price == nil || *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price is required and must be non-negative"})
			return
		}
		if input.Stock != nil && *input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}

		productType := input.Type
		if productType == "" {
			productType = models.ProductTypeBook
		}
		if productType != models.ProductTypeBook && productType != models.ProductTypeGame {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be book or game"})
			return
		}

		stockStatus := input.StockStatus
		if stockStatus == "" {
			stockStatus = models.StockStatusInStock
		}
		switch stockStatus {
		case models.StockStatusInStock, models.StockStatusOutOfStock, models.StockStatusSoldOut:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock_status"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			Type:        productType,
			StockStatus: stockStatus,
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
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

		for _, u := range input.Images {
			if u != "" {
				product.Images = append(product.Images, models.ProductImage{URL: u})
			}
		}
		for _, p := range input.ReadingPlan {
			status := p.Status
			if status == "" {
				status = models.PlanStatusMandatory
			}
			product.ReadingPlan = append(product.ReadingPlan, models.ReadingPlanItem{
				SchoolID: p.SchoolID,
				Grade:    p.Grade,
				Status:   status,
			})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
