package models

// Publisher is a bare name; the display value doubles as the row key.
type Publisher struct {
	Name string `gorm:"primaryKey;size:120" json:"name"`
}
