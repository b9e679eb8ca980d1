package checkoutcontroller

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/neokudilonga-dev/neokudilonga-api/controllers/cart"
	orderControllers "github.com/neokudilonga-dev/neokudilonga-api/controllers/order"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const referenceAttempts = 5

type CheckoutRequest struct {
	GuardianName    string                `json:"guardian_name"`
	GuardianPhone   string                `json:"guardian_phone"`
	GuardianEmail   string                `json:"guardian_email"`
	StudentName     string                `json:"student_name"`
	ClassAndGrade   string                `json:"class_and_grade"`
	SchoolID        *uint                 `json:"school_id"`
	DeliveryOption  models.DeliveryOption `json:"delivery_option"`
	DeliveryAddress string                `json:"delivery_address"`
	PaymentMethod   models.PaymentMethod  `json:"payment_method"`
}

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ValidateRequest applies the checkout rules. Student fields are only
// required when the cart holds a reading-plan product, since plain shop
// orders have no student attached.
func ValidateRequest(req CheckoutRequest, cartHasPlanItems bool) error {
	if strings.TrimSpace(req.GuardianName) == "" {
		return errors.New("guardian_name is required")
	}
	if digitCount(req.GuardianPhone) < 9 {
		return errors.New("guardian_phone must have at least 9 digits")
	}
	if !emailRx.MatchString(req.GuardianEmail) {
		return errors.New("guardian_email is invalid")
	}
	if !req.DeliveryOption.Valid() {
		return errors.New("invalid delivery_option")
	}
	if !req.DeliveryOption.IsPickup() && strings.TrimSpace(req.DeliveryAddress) == "" {
		return errors.New("delivery_address is required for home delivery")
	}
	if !req.PaymentMethod.Valid() {
		return errors.New("invalid payment_method")
	}
	if cartHasPlanItems {
		if strings.TrimSpace(req.StudentName) == "" {
			return errors.New("student_name is required for reading plan orders")
		}
		if strings.TrimSpace(req.ClassAndGrade) == "" {
			return errors.New("class_and_grade is required for reading plan orders")
		}
	}
	return nil
}

// PlaceOrderHandler turns the session cart into a persisted order: validate,
// price, deduct stock under row locks, generate a unique reference, clear
// the cart, notify the dashboard.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := cartControllers.SessionID(c)
		if session == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("session_id = ?", session).First(&cart).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		productIDs := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			productIDs = append(productIDs, item.ProductID)
		}

		var planCount int64
		if err := db.Model(&models.ReadingPlanItem{}).
			Where("product_id IN ?", productIDs).
			Count(&planCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate cart"})
			return
		}

		if err := ValidateRequest(req, planCount > 0); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var school *models.School
		if req.SchoolID != nil && *req.SchoolID != 0 {
			var s models.School
			if err := db.First(&s, *req.SchoolID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "School does not exist"})
				return
			}
			school = &s
		}
		if req.DeliveryOption == models.DeliveryPickupSchool {
			if school == nil || !school.AllowSchoolPickup {
				c.JSON(http.StatusBadRequest, gin.H{"error": "School pickup is not available for this school"})
				return
			}
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var orderItems []models.OrderItem

			for _, item := range cart.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, item.ProductID).Error; err != nil {
					return errors.New("product no longer exists: " + item.ProductNamePT)
				}

				// Only in-stock items are held to their stock count;
				// anything else is a backorder.
				if product.StockStatus == models.StockStatusInStock {
					if product.Stock < item.Quantity {
						return errors.New("insufficient stock for product: " + item.ProductNamePT)
					}
					product.Stock -= item.Quantity
					if err := tx.Save(&product).Error; err != nil {
						return err
					}
				}

				orderItems = append(orderItems, models.OrderItem{
					ProductID:     item.ProductID,
					ProductNamePT: item.ProductNamePT,
					ProductNameEN: item.ProductNameEN,
					ProductImage:  item.ProductImage,
					Price:         item.Price,
					Quantity:      item.Quantity,
				})
			}

			abbreviation := ""
			if school != nil {
				abbreviation = school.Abbreviation
			}
			reference, err := uniqueReference(tx, abbreviation)
			if err != nil {
				return err
			}

			subtotal := models.CartTotal(cart.Items)
			deliveryFee := req.DeliveryOption.Fee()

			order = models.Order{
				Reference:       reference,
				GuardianName:    req.GuardianName,
				GuardianPhone:   req.GuardianPhone,
				GuardianEmail:   req.GuardianEmail,
				StudentName:     req.StudentName,
				ClassAndGrade:   req.ClassAndGrade,
				SchoolID:        req.SchoolID,
				DeliveryOption:  req.DeliveryOption,
				DeliveryAddress: req.DeliveryAddress,
				PaymentMethod:   req.PaymentMethod,
				Items:           orderItems,
				Subtotal:        subtotal,
				DeliveryFee:     deliveryFee,
				Total:           subtotal + deliveryFee,
				PaymentStatus:   models.PaymentStatusPending,
				Status:          models.OrderStatusPending,
				CreatedAt:       time.Now(),
			}

			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderControllers.BroadcastOrder("order_created", order)

		c.JSON(http.StatusCreated, gin.H{
			"reference":      order.Reference,
			"payment_method": order.PaymentMethod,
			"total":          order.Total,
		})
	}
}

// uniqueReference regenerates on collision. The random suffix makes clashes
// rare; the retry plus the unique index makes them harmless.
func uniqueReference(tx *gorm.DB, abbreviation string) (string, error) {
	return generateReference(abbreviation, func(reference string) (bool, error) {
		var existing models.Order
		err := tx.Where("reference = ?", reference).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
}

// generateReference draws references until exists says the candidate is
// free, bounded by referenceAttempts.
func generateReference(abbreviation string, exists func(string) (bool, error)) (string, error) {
	for i := 0; i < referenceAttempts; i++ {
		reference := models.NewOrderReference(abbreviation, time.Now())
		taken, err := exists(reference)
		if err != nil {
			return "", err
		}
		if !taken {
			return reference, nil
		}
	}
	return "", errors.New("failed to generate a unique order reference")
}
