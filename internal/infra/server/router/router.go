// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/apptask/backend/internal/integration/entrypoint/controller"
	"github.com/apptask/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                    *gin.Engine
	healthController          *controller.HealthController
	userController            *controller.UserController
	transactionController     *controller.TransactionController
	categoryController        *controller.CategoryController
	productController         *controller.ProductController
	transactionItemController *controller.TransactionItemController
	paymentController         *controller.PaymentController
	rateLimiter               *middleware.RateLimiter
	messages                  middleware.MessageSource
	logger                    *slog.Logger
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	transactionItemController *controller.TransactionItemController,
	paymentController *controller.PaymentController,
	rateLimiter *middleware.RateLimiter,
	messages middleware.MessageSource,
	logger *slog.Logger,
) *Router {
	return &Router{
		healthController:          healthController,
		userController:            userController,
		transactionController:     transactionController,
		categoryController:        categoryController,
		productController:         productController,
		transactionItemController: transactionItemController,
		paymentController:         paymentController,
		rateLimiter:               rateLimiter,
		messages:                  messages,
		logger:                    logger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(controller.JSONTagName)
	}

	r.engine = gin.New()
	r.engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(r.logger),
		middleware.Locale(r.messages),
		middleware.ErrorHandler(r.messages, r.logger),
	)

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	users := v1.Group("/users")
	{
		users.POST("", r.userController.Create)
		users.GET("", r.userController.List)
		users.GET("/:id", r.userController.Get)
		users.PUT("/:id", r.userController.Update)
		users.DELETE("/:id", r.userController.Delete)
		users.GET("/products/:userId", r.userController.Products)
		users.POST("/bulk-delete", r.userController.BulkDelete)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", r.transactionController.Create)
		transactions.GET("", r.transactionController.List)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
		transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
	}

	// Admin listing of every transaction
	v1.GET("/admin", r.transactionController.List)

	categories := v1.Group("/category")
	{
		categories.POST("", r.categoryController.Create)
		categories.GET("", r.categoryController.List)
		categories.GET("/:id", r.categoryController.Get)
		categories.PUT("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
		categories.POST("/bulk-delete", r.categoryController.BulkDelete)
	}

	products := v1.Group("/product")
	{
		products.POST("", r.productController.Create)
		products.GET("", r.productController.List)
		products.GET("/:id", r.productController.Get)
		products.PUT("/:id", r.productController.Update)
		products.DELETE("/:id", r.productController.Delete)
		products.POST("/bulk-delete", r.productController.BulkDelete)
	}

	items := v1.Group("/transaction-item")
	{
		items.POST("", r.transactionItemController.Create)
		items.GET("", r.transactionItemController.List)
		items.GET("/:id", r.transactionItemController.Get)
		items.PUT("/:id", r.transactionItemController.Update)
		items.DELETE("/:id", r.transactionItemController.Delete)
		items.GET("/products/:transactionId", r.transactionItemController.Products)
		items.POST("/bulk-delete", r.transactionItemController.BulkDelete)
	}

	payments := v1.Group("/user-payment-transaction")
	{
		payments.POST("", r.paymentController.FillBalance)
		payments.GET("", r.paymentController.List)
		payments.GET("/:id", r.paymentController.Get)
		payments.PUT("/:id", r.paymentController.Update)
		payments.DELETE("/:id", r.paymentController.Delete)
		payments.GET("/payment-history/:id", r.paymentController.History)
		payments.GET("/payment-history/:id/export", r.paymentController.ExportHistory)
		payments.POST("/bulk-delete", r.paymentController.BulkDelete)
	}
}
