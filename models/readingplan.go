package models

type PlanStatus string

const (
	PlanStatusMandatory   PlanStatus = "mandatory"
	PlanStatusRecommended PlanStatus = "recommended"
)

// ReadingPlanItem links a product to a school and grade. Rows are removed
// together with their product or school.
type ReadingPlanItem struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint       `gorm:"index;not null" json:"product_id"`
	SchoolID  uint       `gorm:"index;not null" json:"school_id"`
	Grade     string     `gorm:"size:30;not null" json:"grade"`
	Status    PlanStatus `gorm:"type:VARCHAR(15);not null;default:'mandatory'" json:"status"`
}
