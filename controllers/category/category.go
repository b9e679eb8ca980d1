package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name models.LocalizedString `json:"name"`
	Type models.ProductType     `json:"type"`
}

func validateInput(input CategoryInput) string {
	if input.Name.IsZero() {
		return "name is required"
	}
	if input.Type != models.ProductTypeBook && input.Type != models.ProductTypeGame {
		return "type must be book or game"
	}
	return ""
}

// CreateCategory inserts a category. Name+type pairs must be unique; the
// original UI only checked this client-side, here the lookup happens before
// the insert.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := validateInput(input); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		var existing models.Category
		err := db.Where("name_pt = ? AND type = ?", input.Name.PT, input.Type).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Category with this name and type already exists"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		category := models.Category{Name: input.Name, Type: input.Type}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !input.Name.IsZero() {
			category.Name = input.Name
		}
		if input.Type != "" {
			if input.Type != models.ProductTypeBook && input.Type != models.ProductTypeGame {
				c.JSON(http.StatusBadRequest, gin.H{"error": "type must be book or game"})
				return
			}
			category.Type = input.Type
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category. Products keep their category_id; the
// storefront treats a dangling reference as uncategorised.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
