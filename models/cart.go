package models

import "time"

// Cart holds a shopper's selection for one browser session. Sessions are
// anonymous; the key is an opaque ID issued on the first write.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	SessionID string     `gorm:"uniqueIndex" json:"session_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the product fields the storefront renders, so lines
// survive later catalogue edits unchanged.
type CartItem struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CartID        uint        `gorm:"index" json:"-"`
	ProductID     uint        `gorm:"index" json:"product_id"`
	ProductNamePT string      `json:"product_name_pt"`
	ProductNameEN string      `json:"product_name_en"`
	ProductImage  string      `json:"product_image"`
	ProductType   ProductType `json:"product_type"`
	Price         float64     `json:"price"`
	Quantity      int         `json:"quantity"`
	AddedAt       time.Time   `json:"added_at"`
}

// NewCartItem builds a snapshot line for a product.
func NewCartItem(p Product, qty int) CartItem {
	return CartItem{
		ProductID:     p.ID,
		ProductNamePT: p.Name.PT,
		ProductNameEN: p.Name.EN,
		ProductImage:  p.MainImage(),
		ProductType:   p.Type,
		Price:         p.Price,
		Quantity:      qty,
		AddedAt:       time.Now(),
	}
}

// MergeItem applies the add-to-cart rule: an existing line for the product
// grows by qty, otherwise a new line is appended. Kit adds call this once
// per product.
func MergeItem(items []CartItem, p Product, qty int) []CartItem {
	if qty < 1 {
		qty = 1
	}
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += qty
			items[i].AddedAt = time.Now()
			return items
		}
	}
	return append(items, NewCartItem(p, qty))
}

// SetQuantity sets a line's quantity; n <= 0 removes the line. The second
// return reports whether the product had a line at all.
func SetQuantity(items []CartItem, productID uint, n int) ([]CartItem, bool) {
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if n <= 0 {
			return append(items[:i], items[i+1:]...), true
		}
		items[i].Quantity = n
		return items, true
	}
	return items, false
}

// CartCount is the sum of line quantities.
func CartCount(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// CartTotal is the sum of price times quantity over all lines.
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
