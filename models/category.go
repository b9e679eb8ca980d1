package models

// Category groups products of one type. Name+type pairs are unique,
// enforced with a lookup before insert.
type Category struct {
	ID   uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name LocalizedString `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Type ProductType     `gorm:"type:VARCHAR(10);not null;default:'book'" json:"type"`
}
