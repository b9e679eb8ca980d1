package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string
type DeliveryOption string

const (
	// Order statuses (fulfilment flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting preparation
	OrderStatusReady     OrderStatus = "ready"     // Packed, ready for delivery or pickup
	OrderStatusDelivered OrderStatus = "delivered" // Handed to the guardian
	OrderStatusCancelled OrderStatus = "cancelled"

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"

	// Payment methods offered at checkout
	PaymentCashOnDelivery    PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer      PaymentMethod = "bank_transfer"
	PaymentMulticaixaExpress PaymentMethod = "multicaixa_express"

	// Delivery zones plus the free pickup variants
	DeliveryLuanda        DeliveryOption = "luanda"
	DeliveryTalaMorro     DeliveryOption = "tala-morro" // Talatona / Morro Bento
	DeliveryOutsideLuanda DeliveryOption = "outside-luanda"
	DeliveryPickupSchool  DeliveryOption = "pickup-school"
	DeliveryPickupStore   DeliveryOption = "pickup-store"
)

// deliveryFees is a flat per-zone lookup, in Kwanza.
var deliveryFees = map[DeliveryOption]float64{
	DeliveryLuanda:        1500,
	DeliveryTalaMorro:     2000,
	DeliveryOutsideLuanda: 3000,
	DeliveryPickupSchool:  0,
	DeliveryPickupStore:   0,
}

func (d DeliveryOption) Valid() bool {
	_, ok := deliveryFees[d]
	return ok
}

func (d DeliveryOption) IsPickup() bool {
	return d == DeliveryPickupSchool || d == DeliveryPickupStore
}

func (d DeliveryOption) Fee() float64 {
	return deliveryFees[d]
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentBankTransfer, PaymentMulticaixaExpress:
		return true
	}
	return false
}

type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Reference       string         `gorm:"uniqueIndex;size:20;not null" json:"reference"`
	GuardianName    string         `gorm:"not null" json:"guardian_name"`
	GuardianPhone   string         `gorm:"not null" json:"guardian_phone"`
	GuardianEmail   string         `gorm:"not null" json:"guardian_email"`
	StudentName     string         `json:"student_name,omitempty"`
	ClassAndGrade   string         `json:"class_and_grade,omitempty"`
	SchoolID        *uint          `json:"school_id,omitempty"`
	School          *School        `json:"school,omitempty"`
	DeliveryOption  DeliveryOption `gorm:"type:VARCHAR(20);not null" json:"delivery_option"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	PaymentMethod   PaymentMethod  `gorm:"type:VARCHAR(25);not null" json:"payment_method"`
	Items           []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64        `json:"subtotal"`
	DeliveryFee     float64        `json:"delivery_fee"`
	Total           float64        `json:"total"`
	PaymentStatus   PaymentStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	Status          OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"-"`
	ProductID     uint    `json:"product_id"`
	ProductNamePT string  `json:"product_name_pt"`
	ProductNameEN string  `json:"product_name_en"`
	ProductImage  string  `json:"product_image"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
}

// NewOrderReference builds a human-readable reference like CPL-202604217:
// school abbreviation (or LIV for orders without a school), year, five
// random digits. Collisions are possible; callers retry against the
// unique index.
func NewOrderReference(abbreviation string, now time.Time) string {
	if abbreviation == "" {
		abbreviation = "LIV"
	}
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s-%d%05d", abbreviation, now.Year(), suffix)
}
