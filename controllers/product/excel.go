package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// Import sheet columns, matching the export layout.
const (
	colID = iota
	colNamePT
	colNameEN
	colDescriptionPT
	colDescriptionEN
	colPrice
	colStock
	colType
	colStockStatus
	colCategoryID
	colPublisher
	colImages
	importColumns
)

// parseProductRow turns one sheet row into a product. The ID cell is
// returned separately: non-zero means update-in-place.
func parseProductRow(cells []string) (id uint, product models.Product, err error) {
	get := func(index int) string {
		if index < len(cells) {
			return strings.TrimSpace(cells[index])
		}
		return ""
	}

	if idStr := get(colID); idStr != "" {
		id64, convErr := strconv.ParseUint(idStr, 10, 64)
		if convErr != nil {
			return 0, product, errors.New("invalid id")
		}
		id = uint(id64)
	}

	namePT := get(colNamePT)
	nameEN := get(colNameEN)
	if namePT == "" && nameEN == "" {
		return 0, product, errors.New("name is required")
	}

	price, err := strconv.ParseFloat(get(colPrice), 64)
	if err != nil || price < 0 {
		return 0, product, errors.New("invalid price")
	}

	stock := 0
	if s := get(colStock); s != "" {
		stockF, convErr := strconv.ParseFloat(s, 64)
		if convErr != nil || stockF < 0 {
			return 0, product, errors.New("invalid stock")
		}
		stock = int(stockF)
	}

	productType := models.ProductType(get(colType))
	if productType == "" {
		productType = models.ProductTypeBook
	}
	if productType != models.ProductTypeBook && productType != models.ProductTypeGame {
		return 0, product, errors.New("invalid type")
	}

	stockStatus := models.StockStatus(get(colStockStatus))
	if stockStatus == "" {
		stockStatus = models.StockStatusInStock
	}
	switch stockStatus {
	case models.StockStatusInStock, models.StockStatusOutOfStock, models.StockStatusSoldOut:
	default:
		return 0, product, errors.New("invalid stock status")
	}

	product = models.Product{
		Name:        models.LocalizedString{PT: namePT, EN: nameEN},
		Description: models.LocalizedString{PT: get(colDescriptionPT), EN: get(colDescriptionEN)},
		Price:       price,
		Stock:       stock,
		Type:        productType,
		StockStatus: stockStatus,
		Publisher:   get(colPublisher),
	}

	if cid := get(colCategoryID); cid != "" {
		if cid64, convErr := strconv.ParseUint(cid, 10, 64); convErr == nil {
			product.CategoryID = uint(cid64)
		}
	}

	for _, u := range strings.Split(get(colImages), "|") {
		if u = strings.TrimSpace(u); u != "" {
			product.Images = append(product.Images, models.ProductImage{URL: u})
		}
	}

	return id, product, nil
}

// categoryIDSet indexes categories for row validation during import.
func categoryIDSet(categories []models.Category) map[uint]bool {
	set := make(map[uint]bool, len(categories))
	for _, cat := range categories {
		set[cat.ID] = true
	}
	return set
}

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// xlsx sheet. Rows with a known ID update that product; rows with an empty
// ID insert. Bad rows are skipped and counted, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
			return
		}
		knownCategories := categoryIDSet(categories)

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			cells := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				cells[j] = cell.String()
			}

			id, product, err := parseProductRow(cells)
			if err != nil {
				skippedCount++
				continue
			}

			// Same rule as product create: rows naming a category must
			// name one that exists.
			if product.CategoryID != 0 && !knownCategories[product.CategoryID] {
				skippedCount++
				continue
			}

			if id != 0 {
				var existing models.Product
				if err := db.Preload("Images").First(&existing, id).Error; err == nil {
					existing.Name = product.Name
					existing.Description = product.Description
					existing.Price = product.Price
					existing.Stock = product.Stock
					existing.Type = product.Type
					existing.StockStatus = product.StockStatus
					existing.CategoryID = product.CategoryID
					existing.Publisher = product.Publisher

					err := db.Transaction(func(tx *gorm.DB) error {
						if err := tx.Where("product_id = ?", existing.ID).Delete(&models.ProductImage{}).Error; err != nil {
							return err
						}
						existing.Images = nil
						for _, img := range product.Images {
							existing.Images = append(existing.Images, models.ProductImage{ProductID: existing.ID, URL: img.URL})
						}
						return tx.Save(&existing).Error
					})
					if err != nil {
						skippedCount++
						continue
					}
					updatedCount++
					continue
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
