// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/apptask/backend/config"
	"github.com/apptask/backend/internal/application/usecase/category"
	"github.com/apptask/backend/internal/application/usecase/payment"
	"github.com/apptask/backend/internal/application/usecase/product"
	"github.com/apptask/backend/internal/application/usecase/transaction"
	transactionitem "github.com/apptask/backend/internal/application/usecase/transaction_item"
	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/application/usecase/user"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/infra/ratelimit"
	"github.com/apptask/backend/internal/infra/server/router"
	"github.com/apptask/backend/internal/integration/entrypoint/controller"
	"github.com/apptask/backend/internal/integration/entrypoint/middleware"
	"github.com/apptask/backend/internal/integration/export"
	"github.com/apptask/backend/internal/integration/i18n"
	"github.com/apptask/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	redisClient *redis.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
// ctx bounds background work such as rate limit counter cleanup.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*Injector, error) {
	bundle, err := i18n.NewBundle(cfg.I18n.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load message bundle: %w", err)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)
	itemRepo := persistence.NewTransactionItemRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)

	pages := controller.NewPageParser(cfg.Pagination)

	// Create use cases and controllers
	userController := controller.NewUserController(
		user.NewCreateUserUseCase(userRepo),
		user.NewUpdateUserUseCase(userRepo),
		user.NewGetUserUseCase(userRepo),
		user.NewListUsersUseCase(userRepo),
		user.NewDeleteUserUseCase(userRepo),
		user.NewListUserProductsUseCase(userRepo, itemRepo),
		trash.NewBulkDeleteUseCase[entity.User](userRepo),
		pages,
	)

	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo, userRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo),
		transaction.NewGetTransactionUseCase(transactionRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		trash.NewBulkDeleteUseCase[entity.Transaction](transactionRepo),
		pages,
	)

	categoryController := controller.NewCategoryController(
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewUpdateCategoryUseCase(categoryRepo),
		category.NewGetCategoryUseCase(categoryRepo),
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
		trash.NewBulkDeleteUseCase[entity.Category](categoryRepo),
		pages,
	)

	productController := controller.NewProductController(
		product.NewCreateProductUseCase(productRepo, categoryRepo),
		product.NewUpdateProductUseCase(productRepo),
		product.NewGetProductUseCase(productRepo),
		product.NewListProductsUseCase(productRepo),
		product.NewDeleteProductUseCase(productRepo),
		trash.NewBulkDeleteUseCase[entity.Product](productRepo),
		pages,
	)

	transactionItemController := controller.NewTransactionItemController(
		transactionitem.NewCreateTransactionItemUseCase(itemRepo, transactionRepo, productRepo),
		transactionitem.NewUpdateTransactionItemUseCase(itemRepo),
		transactionitem.NewGetTransactionItemUseCase(itemRepo),
		transactionitem.NewListTransactionItemsUseCase(itemRepo),
		transactionitem.NewDeleteTransactionItemUseCase(itemRepo),
		transactionitem.NewListTransactionProductsUseCase(transactionRepo, itemRepo),
		trash.NewBulkDeleteUseCase[entity.TransactionItem](itemRepo),
		pages,
	)

	historyUseCase := payment.NewGetPaymentHistoryUseCase(userRepo, paymentRepo)
	paymentController := controller.NewPaymentController(
		payment.NewCreatePaymentUseCase(paymentRepo),
		payment.NewUpdatePaymentUseCase(paymentRepo),
		payment.NewGetPaymentUseCase(paymentRepo),
		payment.NewListPaymentsUseCase(paymentRepo),
		payment.NewDeletePaymentUseCase(paymentRepo),
		historyUseCase,
		payment.NewExportPaymentHistoryUseCase(historyUseCase, export.NewPaymentHistoryXLSX()),
		trash.NewBulkDeleteUseCase[entity.UserPaymentTransaction](paymentRepo),
		pages,
	)

	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	})

	// Create middleware
	injector := &Injector{
		Config: cfg,
		DB:     db,
	}
	store := injector.rateLimitStore(ctx, logger)
	rateLimiter := middleware.NewRateLimiter(store, cfg.RateLimit.Enabled, logger)

	injector.Router = router.NewRouter(
		healthController,
		userController,
		transactionController,
		categoryController,
		productController,
		transactionItemController,
		paymentController,
		rateLimiter,
		bundle,
		logger,
	)

	return injector, nil
}

// rateLimitStore shares counters through Redis when REDIS_URL is set and
// falls back to process memory otherwise.
func (i *Injector) rateLimitStore(ctx context.Context, logger *slog.Logger) middleware.RateLimitStore {
	limits := i.Config.RateLimit

	if i.Config.Redis.URL != "" {
		client, err := ratelimit.NewRedisClient(ctx, &i.Config.Redis)
		if err == nil {
			i.redisClient = client
			logger.Info("Rate limit counters stored in Redis")
			return ratelimit.NewRedisStore(client, limits.MaxRequests, limits.Window)
		}
		logger.Warn("Redis unavailable, keeping rate limit counters in memory", "error", err)
	}

	store := ratelimit.NewMemoryStore(limits.MaxRequests, limits.Window)
	go store.RunCleanup(ctx, limits.Window)
	return store
}

// Close releases connections owned by the injector.
func (i *Injector) Close() error {
	if i.redisClient != nil {
		return i.redisClient.Close()
	}
	return nil
}
