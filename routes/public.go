package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/neokudilonga-dev/neokudilonga-api/controllers/cart"
	categorycontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/category"
	checkoutcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/checkout"
	orderControllers "github.com/neokudilonga-dev/neokudilonga-api/controllers/order"
	productcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/product"
	publishercontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/publisher"
	readingplancontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/readingplan"
	schoolcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/school"
	"gorm.io/gorm"
)

// SetupPublicRoutes wires everything an anonymous shopper can reach:
// catalog reads, the session cart, checkout, and order confirmation.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		// Catalog
		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:id", productcontroller.GetProductByID(db))
		api.GET("/categories", categorycontroller.GetAllCategories(db))
		api.GET("/publishers", publishercontroller.GetAllPublishers(db))
		api.GET("/schools", schoolcontroller.GetAllSchools(db))
		api.GET("/reading-plan", readingplancontroller.GetReadingPlan(db))

		// Session cart
		api.GET("/cart", cartControllers.GetCart(db))
		api.POST("/cart/items", cartControllers.AddItem(db))
		api.POST("/cart/kit", cartControllers.AddKit(db))
		api.PUT("/cart/items/:product_id", cartControllers.UpdateQuantity(db))
		api.DELETE("/cart/items/:product_id", cartControllers.RemoveItem(db))
		api.DELETE("/cart", cartControllers.ClearCart(db))

		// Checkout and confirmation
		api.POST("/orders", checkoutcontroller.PlaceOrderHandler(db))
		api.GET("/orders/:reference", orderControllers.GetOrderByReferenceHandler(db))
	}
}
