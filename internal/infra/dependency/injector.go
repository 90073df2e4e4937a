// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/profitpulse/backend/config"
	"github.com/profitpulse/backend/internal/application/usecase/analytics"
	"github.com/profitpulse/backend/internal/application/usecase/auth"
	"github.com/profitpulse/backend/internal/application/usecase/integration"
	"github.com/profitpulse/backend/internal/application/usecase/order"
	"github.com/profitpulse/backend/internal/application/usecase/report"
	"github.com/profitpulse/backend/internal/infra/server/router"
	"github.com/profitpulse/backend/internal/integration/adapters"
	"github.com/profitpulse/backend/internal/integration/entrypoint/controller"
	"github.com/profitpulse/backend/internal/integration/entrypoint/middleware"
	"github.com/profitpulse/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthCheck, cacheHealthCheck func() bool) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	storeRepo := persistence.NewStoreRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	spendRepo := persistence.NewSpendRepository(db)
	integrationRepo := persistence.NewIntegrationRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	shopifyClient := adapters.NewShopifyClient(
		cfg.Shopify.APIKey,
		cfg.Shopify.APISecret,
		cfg.Shopify.Scopes,
		cfg.Shopify.RedirectURI,
	)
	stateStore := adapters.NewRedisStateStore(redisClient)

	// Use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	getProfitReportUseCase := report.NewGetProfitReportUseCase(storeRepo, orderRepo, spendRepo)
	getChannelPerformanceUseCase := analytics.NewGetChannelPerformanceUseCase(storeRepo, spendRepo)
	listOrdersUseCase := order.NewListOrdersUseCase(storeRepo, orderRepo)

	connectShopifyUseCase := integration.NewConnectShopifyUseCase(stateStore, shopifyClient)
	completeShopifyUseCase := integration.NewCompleteShopifyUseCase(stateStore, shopifyClient, storeRepo, integrationRepo)
	listIntegrationsUseCase := integration.NewListIntegrationsUseCase(storeRepo, integrationRepo)
	toggleIntegrationUseCase := integration.NewToggleIntegrationUseCase(storeRepo, integrationRepo)

	// Controllers
	healthController := controller.NewHealthController(dbHealthCheck, cacheHealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	dashboardController := controller.NewDashboardController(getProfitReportUseCase)
	analyticsController := controller.NewAnalyticsController(getChannelPerformanceUseCase)
	orderController := controller.NewOrderController(listOrdersUseCase)
	integrationController := controller.NewIntegrationController(
		connectShopifyUseCase,
		completeShopifyUseCase,
		listIntegrationsUseCase,
		toggleIntegrationUseCase,
		cfg.Shopify.FrontendURL,
	)

	// Middleware
	// Higher rate limits in test environments to prevent flaky tests.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		dashboardController,
		analyticsController,
		orderController,
		integrationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
