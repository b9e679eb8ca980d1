package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// BuildProductsWorkbook renders products into the import/export sheet
// layout. Shared by the export endpoints and the nightly catalogue backup.
func BuildProductsWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	headers := []string{
		"ID", "NamePT", "NameEN", "DescriptionPT", "DescriptionEN",
		"Price", "Stock", "Type", "StockStatus", "CategoryID",
		"Publisher", "Images", "CreatedAt", "UpdatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()

		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name.PT)
		row.AddCell().SetValue(p.Name.EN)
		row.AddCell().SetValue(p.Description.PT)
		row.AddCell().SetValue(p.Description.EN)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(string(p.Type))
		row.AddCell().SetValue(string(p.StockStatus))
		row.AddCell().SetValue(p.CategoryID)
		row.AddCell().SetValue(p.Publisher)

		var urls []string
		for _, img := range p.Images {
			urls = append(urls, img.URL)
		}
		row.AddCell().SetValue(strings.Join(urls, "|"))

		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return file, nil
}

func writeWorkbook(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

// ExportProductsToExcel streams the whole catalogue as an xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file, err := BuildProductsWorkbook(products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}
		writeWorkbook(c, file, "products.xlsx")
	}
}

// ExportGamesToExcel streams only the game subset of the catalogue.
func ExportGamesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []models.Product
		if err := db.Preload("Images").
			Where("type = ?", models.ProductTypeGame).
			Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}

		file, err := BuildProductsWorkbook(games)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}
		writeWorkbook(c, file, "games.xlsx")
	}
}
