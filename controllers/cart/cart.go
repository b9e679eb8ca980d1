package cartControllers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"gorm.io/gorm"
)

// Shoppers are anonymous; the cart key travels in a header (SPA) or cookie
// (plain browser). A key is minted on the first write.
const (
	SessionHeader = "X-Cart-Session"
	SessionCookie = "cart_session"
)

const sessionCookieMaxAge = 30 * 24 * 60 * 60

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type KitInput struct {
	ProductIDs []uint `json:"product_ids" binding:"required"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// SessionID resolves the cart key from the request, header first. Empty
// means the shopper has no cart yet.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func ensureSession(c *gin.Context) string {
	if id := SessionID(c); id != "" {
		return id
	}
	id := uuid.NewString()
	secure := os.Getenv("COOKIE_INSECURE") != "true"
	c.SetCookie(SessionCookie, id, sessionCookieMaxAge, "/", "", secure, true)
	c.Header(SessionHeader, id)
	return id
}

func loadOrCreateCart(db *gorm.DB, session string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("session_id = ?", session).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{SessionID: session}
		if err := db.Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}

// replaceItems persists an in-memory line set as the cart's new contents.
func replaceItems(db *gorm.DB, cart models.Cart, items []models.CartItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].CartID = cart.CartID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func respondCart(c *gin.Context, items []models.CartItem) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": models.CartCount(items),
		"total": models.CartTotal(items),
	})
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionID(c)
		if session == "" {
			respondCart(c, []models.CartItem{})
			return
		}

		var cart models.Cart
		err := db.Preload("Items").Where("session_id = ?", session).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			respondCart(c, []models.CartItem{})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respondCart(c, cart.Items)
	}
}

// POST /api/cart/items — merge-or-insert one product.
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		session := ensureSession(c)
		cart, err := loadOrCreateCart(db, session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items := models.MergeItem(cart.Items, product, input.Quantity)
		if err := replaceItems(db, cart, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respondCart(c, items)
	}
}

// POST /api/cart/kit — merge-or-insert a reading-plan bundle in one batch.
func AddKit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input KitInput
		if err := c.ShouldBindJSON(&input); err != nil || len(input.ProductIDs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_ids is required"})
			return
		}

		var products []models.Product
		if err := db.Preload("Images").Where("id IN ?", input.ProductIDs).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No such products"})
			return
		}

		session := ensureSession(c)
		cart, err := loadOrCreateCart(db, session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items := cart.Items
		for _, p := range products {
			items = models.MergeItem(items, p, 1)
		}
		if err := replaceItems(db, cart, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respondCart(c, items)
	}
}

// PUT /api/cart/items/:product_id — set quantity; zero or less removes.
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := SessionID(c)
		if session == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("session_id = ?", session).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		items, found := models.SetQuantity(cart.Items, uint(productID), input.Quantity)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err := replaceItems(db, cart, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respondCart(c, items)
	}
}

// DELETE /api/cart/items/:product_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		session := SessionID(c)
		if session == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("session_id = ?", session).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		items, found := models.SetQuantity(cart.Items, uint(productID), 0)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err := replaceItems(db, cart, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respondCart(c, items)
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionID(c)
		if session == "" {
			respondCart(c, []models.CartItem{})
			return
		}

		var cart models.Cart
		err := db.Where("session_id = ?", session).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			respondCart(c, []models.CartItem{})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		respondCart(c, []models.CartItem{})
	}
}
