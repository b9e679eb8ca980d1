package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalogue with optional filters: search, type,
// category_id, school_id (reading-plan membership), publisher, sorting.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		productType := c.Query("type")
		categoryID := c.Query("category_id")
		schoolID := c.Query("school_id")
		publisher := c.Query("publisher")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		switch sortBy {
		case "created_at", "price", "name_pt", "stock":
		default:
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).
			Preload("Images").
			Preload("ReadingPlan").
			Preload("Category")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(`
				name_pt ILIKE ? OR name_en ILIKE ? OR description_pt ILIKE ? OR description_en ILIKE ?
			`, likePattern, likePattern, likePattern, likePattern)
		}

		if productType != "" {
			if productType != string(models.ProductTypeBook) && productType != string(models.ProductTypeGame) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
				return
			}
			query = query.Where("type = ?", productType)
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		if publisher != "" {
			query = query.Where("publisher = ?", publisher)
		}

		// school_id narrows to products on that school's reading plan
		if schoolID != "" {
			if sid, err := strconv.ParseUint(schoolID, 10, 64); err == nil {
				query = query.
					Joins("JOIN reading_plan_items rpi ON rpi.product_id = products.id").
					Where("rpi.school_id = ?", uint(sid)).
					Distinct("products.*")
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school_id"})
				return
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
