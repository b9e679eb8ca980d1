package checkoutcontroller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		GuardianName:    "Maria Fernanda",
		GuardianPhone:   "+244 923 456 789",
		GuardianEmail:   "maria@example.com",
		DeliveryOption:  models.DeliveryLuanda,
		DeliveryAddress: "Rua da Missão 42, Luanda",
		PaymentMethod:   models.PaymentCashOnDelivery,
	}
}

func TestValidateRequestAccepts(t *testing.T) {
	assert.NoError(t, ValidateRequest(validRequest(), false))
}

func TestValidateRequestGuardianName(t *testing.T) {
	req := validRequest()
	req.GuardianName = "   "
	assert.Error(t, ValidateRequest(req, false))
}

func TestValidateRequestPhoneDigits(t *testing.T) {
	req := validRequest()
	req.GuardianPhone = "92345"
	assert.Error(t, ValidateRequest(req, false))

	// Formatting characters don't count, digits do.
	req.GuardianPhone = "(923) 456-789"
	assert.NoError(t, ValidateRequest(req, false))
}

func TestValidateRequestEmail(t *testing.T) {
	req := validRequest()
	for _, bad := range []string{"", "maria", "maria@", "@example.com", "a b@example.com"} {
		req.GuardianEmail = bad
		assert.Error(t, ValidateRequest(req, false), "email %q should fail", bad)
	}
}

func TestValidateRequestDeliveryOption(t *testing.T) {
	req := validRequest()
	req.DeliveryOption = "teleport"
	assert.Error(t, ValidateRequest(req, false))
}

func TestValidateRequestAddressRequiredForDelivery(t *testing.T) {
	req := validRequest()
	req.DeliveryAddress = ""
	assert.Error(t, ValidateRequest(req, false))

	// Pickups don't need an address.
	req.DeliveryOption = models.DeliveryPickupStore
	assert.NoError(t, ValidateRequest(req, false))
}

func TestValidateRequestPaymentMethod(t *testing.T) {
	req := validRequest()
	req.PaymentMethod = "crypto"
	assert.Error(t, ValidateRequest(req, false))
}

func TestValidateRequestStudentFieldsForPlanOrders(t *testing.T) {
	req := validRequest()

	// Shop-only cart: no student fields needed.
	assert.NoError(t, ValidateRequest(req, false))

	// Reading-plan cart: both become mandatory.
	assert.Error(t, ValidateRequest(req, true))

	req.StudentName = "João"
	assert.Error(t, ValidateRequest(req, true))

	req.ClassAndGrade = "5ª classe B"
	assert.NoError(t, ValidateRequest(req, true))
}

func TestTalaMorroOrderTotals(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Price: 1000, Quantity: 1},
	}

	subtotal := models.CartTotal(items)
	fee := models.DeliveryTalaMorro.Fee()

	require.Equal(t, 1000.0, subtotal)
	require.Equal(t, 2000.0, fee)
	assert.Equal(t, 3000.0, subtotal+fee)
}

func TestGenerateReferenceFirstTry(t *testing.T) {
	ref, err := generateReference("CPL", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CPL-\d{9}$`), ref)
}

func TestGenerateReferenceRetriesOnCollision(t *testing.T) {
	calls := 0
	ref, err := generateReference("", func(string) (bool, error) {
		calls++
		return calls <= 2, nil // first two candidates taken
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Regexp(t, regexp.MustCompile(`^LIV-\d{9}$`), ref)
}

func TestGenerateReferenceGivesUpAfterBoundedAttempts(t *testing.T) {
	calls := 0
	_, err := generateReference("CPL", func(string) (bool, error) {
		calls++
		return true, nil
	})
	assert.Error(t, err)
	assert.Equal(t, referenceAttempts, calls)
}

func TestGenerateReferencePropagatesLookupError(t *testing.T) {
	boom := errors.New("connection lost")
	_, err := generateReference("CPL", func(string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestPlaceOrderRejectsWithoutCartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", PlaceOrderHandler(nil))

	body := `{"guardian_name":"Maria","guardian_phone":"923456789",` +
		`"guardian_email":"maria@example.com","delivery_option":"luanda",` +
		`"delivery_address":"Rua 1","payment_method":"cash_on_delivery"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}

func TestDigitCount(t *testing.T) {
	assert.Equal(t, 9, digitCount("923456789"))
	assert.Equal(t, 9, digitCount("+244-92 34/56"))
	assert.Equal(t, 0, digitCount("abc"))
}
