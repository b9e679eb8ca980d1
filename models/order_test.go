package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderReferenceFormat(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ref := NewOrderReference("CPL", now)
	assert.Regexp(t, regexp.MustCompile(`^CPL-2026\d{5}$`), ref)

	ref = NewOrderReference("", now)
	assert.Regexp(t, regexp.MustCompile(`^LIV-2026\d{5}$`), ref)
}

func TestDeliveryOptionFees(t *testing.T) {
	assert.Equal(t, 1500.0, DeliveryLuanda.Fee())
	assert.Equal(t, 2000.0, DeliveryTalaMorro.Fee())
	assert.Equal(t, 3000.0, DeliveryOutsideLuanda.Fee())
	assert.Equal(t, 0.0, DeliveryPickupSchool.Fee())
	assert.Equal(t, 0.0, DeliveryPickupStore.Fee())
}

func TestDeliveryOptionValid(t *testing.T) {
	assert.True(t, DeliveryLuanda.Valid())
	assert.True(t, DeliveryPickupStore.Valid())
	assert.False(t, DeliveryOption("moon").Valid())
	assert.False(t, DeliveryOption("").Valid())
}

func TestDeliveryOptionIsPickup(t *testing.T) {
	assert.True(t, DeliveryPickupSchool.IsPickup())
	assert.True(t, DeliveryPickupStore.IsPickup())
	assert.False(t, DeliveryLuanda.IsPickup())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentCashOnDelivery.Valid())
	assert.True(t, PaymentBankTransfer.Valid())
	assert.True(t, PaymentMulticaixaExpress.Valid())
	assert.False(t, PaymentMethod("paypal").Valid())
}
