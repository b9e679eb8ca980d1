package readingplancontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

type PlanItemInput struct {
	ProductID uint              `json:"product_id" binding:"required"`
	SchoolID  uint              `json:"school_id" binding:"required"`
	Grade     string            `json:"grade" binding:"required"`
	Status    models.PlanStatus `json:"status"`
}

// GetReadingPlan lists plan rows, optionally narrowed by school and grade.
func GetReadingPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.ReadingPlanItem{})

		if schoolID := c.Query("school_id"); schoolID != "" {
			sid, err := strconv.ParseUint(schoolID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school_id"})
				return
			}
			query = query.Where("school_id = ?", uint(sid))
		}
		if grade := c.Query("grade"); grade != "" {
			query = query.Where("grade = ?", grade)
		}

		var items []models.ReadingPlanItem
		if err := query.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reading plan"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreatePlanItem links a product to a school and grade. Both ends must
// exist; plan rows never reference missing products or schools.
func CreatePlanItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlanItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status := input.Status
		if status == "" {
			status = models.PlanStatusMandatory
		}
		if status != models.PlanStatusMandatory && status != models.PlanStatusRecommended {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be mandatory or recommended"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		var school models.School
		if err := db.First(&school, input.SchoolID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "School does not exist"})
			return
		}

		item := models.ReadingPlanItem{
			ProductID: product.ID,
			SchoolID:  school.ID,
			Grade:     input.Grade,
			Status:    status,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reading plan item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func DeletePlanItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.ReadingPlanItem{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reading plan item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reading plan item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reading plan item deleted"})
	}
}
