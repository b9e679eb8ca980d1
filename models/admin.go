package models

// Admin is a Google account allowed into the back office. New sign-ins are
// stored unapproved until the super admin approves them.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"unique" json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Approved bool   `json:"approved"`
}
