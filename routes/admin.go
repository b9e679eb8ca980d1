package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/neokudilonga-dev/neokudilonga-api/controllers/admin"
	categorycontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/category"
	orderControllers "github.com/neokudilonga-dev/neokudilonga-api/controllers/order"
	productcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/product"
	publishercontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/publisher"
	readingplancontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/readingplan"
	schoolcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/school"
	uploadcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/upload"
	"github.com/neokudilonga-dev/neokudilonga-api/middleware"
	"github.com/neokudilonga-dev/neokudilonga-api/storage"
	"gorm.io/gorm"
)

// SetupAdminRoutes wires every mutation behind the session cookie, plus the
// back-office pages themselves.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *storage.Store) {
	api := r.Group("/api")
	api.Use(middleware.RequireAdmin())
	{
		// Products
		api.POST("/products", productcontroller.CreateProduct(db))
		api.PUT("/products/:id", productcontroller.UpdateProduct(db))
		api.DELETE("/products/:id", productcontroller.DeleteProduct(db, store))
		api.POST("/products/import", productcontroller.ImportProductsFromExcel(db))
		api.GET("/products/export", productcontroller.ExportProductsToExcel(db))
		api.GET("/games/export", productcontroller.ExportGamesToExcel(db))

		// Categories
		api.POST("/categories", categorycontroller.CreateCategory(db))
		api.PUT("/categories/:id", categorycontroller.UpdateCategory(db))
		api.DELETE("/categories/:id", categorycontroller.DeleteCategory(db))

		// Publishers
		api.POST("/publishers", publishercontroller.CreatePublisher(db))
		api.DELETE("/publishers/:name", publishercontroller.DeletePublisher(db))

		// Schools and reading plans
		api.POST("/schools", schoolcontroller.CreateSchool(db))
		api.PUT("/schools/:id", schoolcontroller.UpdateSchool(db))
		api.DELETE("/schools/:id", schoolcontroller.DeleteSchool(db))
		api.POST("/reading-plan", readingplancontroller.CreatePlanItem(db))
		api.DELETE("/reading-plan/:id", readingplancontroller.DeletePlanItem(db))

		// Orders
		api.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		api.PUT("/orders/:reference/status", orderControllers.UpdateOrderStatusHandler(db))
		api.PUT("/orders/:reference/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
		api.DELETE("/orders/:reference", orderControllers.DeleteOrderHandler(db))
		api.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		// Image uploads
		api.POST("/upload/r2", uploadcontroller.UploadImage(store))

		// Admin access management
		api.GET("/admins", adminController.GetAllAdmins(db))
		api.GET("/admins/pending", adminController.ListPendingAdmins(db))
		api.POST("/admins/approve", adminController.ApproveAdmin(db))
		api.POST("/admins/reject", adminController.RejectAdmin(db))
	}

	// Back-office pages. The login page is exempt inside RequireAdminPage;
	// everything else redirects there with redirect_to set.
	pages := r.Group("/admin")
	pages.Use(middleware.RequireAdminPage())
	{
		pages.GET("/*page", func(c *gin.Context) {
			c.File("./static/admin/index.html")
		})
	}
}
