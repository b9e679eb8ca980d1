package models

import "time"

type School struct {
	ID                 uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               LocalizedString   `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Abbreviation       string            `gorm:"size:10;not null" json:"abbreviation"`
	AllowSchoolPickup  bool              `json:"allow_school_pickup"`
	HasRecommendedPlan bool              `json:"has_recommended_plan"`
	ReadingPlan        []ReadingPlanItem `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"reading_plan,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
