// Package server wires repositories, services and handlers into the HTTP router.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/application/service"
	"github.com/sangkips/salestrack-api/internal/config"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/internal/infrastructure/repository"
	"github.com/sangkips/salestrack-api/internal/presentation/http/handler"
	"github.com/sangkips/salestrack-api/internal/presentation/http/middleware"
	"github.com/sangkips/salestrack-api/internal/presentation/http/routes"
	"github.com/sangkips/salestrack-api/pkg/utils"
	"gorm.io/gorm"
)

// Options overrides parts of the default wiring
type Options struct {
	// IdempotencyRepo defaults to the database-backed store
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *slog.Logger
	RateLimiter     *middleware.ClientRateLimiter
}

// NewRouter builds the API router on top of db
func NewRouter(cfg *config.Config, db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := opts.IdempotencyRepo
	if idempotencyRepo == nil {
		idempotencyRepo = repository.NewIdempotencyRepository(db)
	}

	// Initialize services
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	reconciler := service.NewPaymentStatusReconciler(orderRepo, paymentRepo, logger)
	authService := service.NewAuthService(cfg.Auth.Username, cfg.Auth.PasswordHash, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	opportunityService := service.NewOpportunityService(opportunityRepo, customerRepo)
	offerService := service.NewOfferService(offerRepo, customerRepo, opportunityRepo)
	orderService := service.NewOrderService(orderRepo, offerRepo, customerRepo, reconciler)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, reconciler)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Customer:    handler.NewCustomerHandler(customerService),
		Opportunity: handler.NewOpportunityHandler(opportunityService),
		Offer:       handler.NewOfferHandler(offerService),
		Order:       handler.NewOrderHandler(orderService),
		Payment:     handler.NewPaymentHandler(paymentService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	return routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Auth:            authService,
		IdempotencyRepo: idempotencyRepo,
		Logger:          logger,
		RateLimiter:     opts.RateLimiter,
	})
}
