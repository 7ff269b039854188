package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/config"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/internal/presentation/http/handler"
	"github.com/sangkips/salestrack-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Opportunity *handler.OpportunityHandler
	Offer       *handler.OfferHandler
	Order       *handler.OrderHandler
	Payment     *handler.PaymentHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Auth            middleware.TokenAuthenticator
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *slog.Logger
	// RateLimiter is optional; Setup creates one from Cfg.RateLimit when nil.
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: perSecond(deps.Cfg.RateLimit),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
	}

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/auth/token", rateLimiter.Middleware(), h.Auth.Login)

		// Protected routes; open when no JWT secret is configured
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Auth))
		protected.Use(rateLimiter.Middleware())

		idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
			Repo:   deps.IdempotencyRepo,
			Logger: deps.Logger,
		})

		protected.GET("/dashboard", h.Dashboard.GetSummary)
		protected.GET("/status-labels", h.Dashboard.GetStatusLabels)

		registerCustomerRoutes(protected, h)
		registerOpportunityRoutes(protected, h)
		registerOfferRoutes(protected, h)
		registerOrderRoutes(protected, h, idempotency)
		registerPaymentRoutes(protected, h, idempotency)
	}

	return router
}

func perSecond(cfg config.RateLimitConfig) float64 {
	if cfg.Requests <= 0 || cfg.Duration <= 0 {
		return 0
	}
	return float64(cfg.Requests) / float64(cfg.Duration)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerOpportunityRoutes(protected *gin.RouterGroup, h *Handlers) {
	opportunities := protected.Group("/opportunities")
	{
		opportunities.GET("", h.Opportunity.List)
		opportunities.POST("", h.Opportunity.Create)
		opportunities.GET("/:id", h.Opportunity.Get)
		opportunities.PATCH("/:id", h.Opportunity.Update)
		opportunities.PUT("/:id", h.Opportunity.Update)
		opportunities.DELETE("/:id", h.Opportunity.Delete)
	}
}

func registerOfferRoutes(protected *gin.RouterGroup, h *Handlers) {
	offers := protected.Group("/offers")
	{
		offers.GET("", h.Offer.List)
		offers.POST("", h.Offer.Create)
		offers.GET("/:id", h.Offer.Get)
		offers.PATCH("/:id", h.Offer.Update)
		offers.PUT("/:id", h.Offer.Update)
		offers.DELETE("/:id", h.Offer.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, idempotency gin.HandlerFunc) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", idempotency, h.Order.Create)
		orders.POST("/from-offer/:offerId", idempotency, h.Order.CreateFromOffer)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/balance", h.Order.Balance)
		orders.PATCH("/:id", h.Order.Update)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
	}
}

func registerPaymentRoutes(protected *gin.RouterGroup, h *Handlers, idempotency gin.HandlerFunc) {
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.POST("", idempotency, h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
		payments.PATCH("/:id", h.Payment.Update)
		payments.PUT("/:id", h.Payment.Update)
		payments.DELETE("/:id", h.Payment.Delete)
	}
}
