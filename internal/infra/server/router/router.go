// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/profitpulse/backend/internal/integration/entrypoint/controller"
	"github.com/profitpulse/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	dashboardController   *controller.DashboardController
	analyticsController   *controller.AnalyticsController
	orderController       *controller.OrderController
	integrationController *controller.IntegrationController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	dashboardController *controller.DashboardController,
	analyticsController *controller.AnalyticsController,
	orderController *controller.OrderController,
	integrationController *controller.IntegrationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		dashboardController:   dashboardController,
		analyticsController:   analyticsController,
		orderController:       orderController,
		integrationController: integrationController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/stats", r.dashboardController.GetStats)
			}
		}

		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/channels", r.analyticsController.GetChannelPerformance)
			}
		}

		if r.orderController != nil && r.authMiddleware != nil {
			orders := v1.Group("/orders")
			orders.Use(r.authMiddleware.Authenticate())
			{
				orders.GET("", r.orderController.List)
			}
		}

		if r.integrationController != nil && r.authMiddleware != nil {
			// The OAuth callback is hit by Shopify's redirect, which carries
			// no Authorization header, so it stays outside the auth group.
			v1.GET("/integrations/shopify/callback", r.integrationController.ShopifyCallback)

			integrations := v1.Group("/integrations")
			integrations.Use(r.authMiddleware.Authenticate())
			{
				integrations.GET("", r.integrationController.List)
				integrations.POST("/shopify/connect", r.integrationController.ConnectShopify)
				integrations.POST("/toggle", r.integrationController.Toggle)
			}
		}
	}
}
