package schoolcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

type SchoolInput struct {
	Name               models.LocalizedString `json:"name"`
	Abbreviation       string                 `json:"abbreviation"`
	AllowSchoolPickup  *bool                  `json:"allow_school_pickup"`
	HasRecommendedPlan *bool                  `json:"has_recommended_plan"`
}

func CreateSchool(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SchoolInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if strings.TrimSpace(input.Abbreviation) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "abbreviation is required"})
			return
		}

		school := models.School{
			Name:         input.Name,
			Abbreviation: strings.ToUpper(strings.TrimSpace(input.Abbreviation)),
		}
		if input.AllowSchoolPickup != nil {
			school.AllowSchoolPickup = *input.AllowSchoolPickup
		}
		if input.HasRecommendedPlan != nil {
			school.HasRecommendedPlan = *input.HasRecommendedPlan
		}

		if err := db.Create(&school).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school"})
			return
		}
		c.JSON(http.StatusCreated, school)
	}
}

func GetAllSchools(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var schools []models.School
		if err := db.Order("name_pt asc").Find(&schools).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schools"})
			return
		}
		c.JSON(http.StatusOK, schools)
	}
}

func UpdateSchool(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var school models.School
		if err := db.First(&school, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
			return
		}

		var input SchoolInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !input.Name.IsZero() {
			school.Name = input.Name
		}
		if strings.TrimSpace(input.Abbreviation) != "" {
			school.Abbreviation = strings.ToUpper(strings.TrimSpace(input.Abbreviation))
		}
		if input.AllowSchoolPickup != nil {
			school.AllowSchoolPickup = *input.AllowSchoolPickup
		}
		if input.HasRecommendedPlan != nil {
			school.HasRecommendedPlan = *input.HasRecommendedPlan
		}

		if err := db.Save(&school).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update school"})
			return
		}
		c.JSON(http.StatusOK, school)
	}
}

// DeleteSchool removes a school and cascades its reading-plan rows, so no
// plan entry is left pointing at a missing school.
func DeleteSchool(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var school models.School
		if err := db.First(&school, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("school_id = ?", school.ID).Delete(&models.ReadingPlanItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&school).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete school"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "School deleted successfully"})
	}
}
