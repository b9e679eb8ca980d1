package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductType string
type StockStatus string

const (
	ProductTypeBook ProductType = "book"
	ProductTypeGame ProductType = "game"

	StockStatusInStock    StockStatus = "in_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusSoldOut    StockStatus = "sold_out"
)

type Product struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        LocalizedString   `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description LocalizedString   `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Price       float64           `gorm:"not null" json:"price"`
	Stock       int               `json:"stock"`
	Type        ProductType       `gorm:"type:VARCHAR(10);not null;default:'book'" json:"type"`
	StockStatus StockStatus       `gorm:"type:VARCHAR(20);not null;default:'in_stock'" json:"stock_status"`
	CategoryID  uint              `gorm:"index" json:"category_id"`
	Category    *Category         `json:"category,omitempty"`
	Publisher   string            `gorm:"index" json:"publisher,omitempty"`
	Images      []ProductImage    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	ReadingPlan []ReadingPlanItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reading_plan,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

// ProductImage is one uploaded image URL. Books carry a single row, games
// may carry several.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
}

// MainImage returns the first image URL, or "" for a product without images.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
