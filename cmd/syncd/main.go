package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanifw/kantong-sync/internal/config"
	"github.com/hanifw/kantong-sync/internal/domain"
	"github.com/hanifw/kantong-sync/internal/handler"
	"github.com/hanifw/kantong-sync/internal/middleware"
	"github.com/hanifw/kantong-sync/internal/repository/api"
	"github.com/hanifw/kantong-sync/internal/service"
	"github.com/hanifw/kantong-sync/internal/state"
	"github.com/hanifw/kantong-sync/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Remote API client
	client, err := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, api.StaticToken(cfg.APIToken))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create API client")
	}

	// Initialize repositories
	accountRepo := api.NewAccountRepository(client)
	categoryRepo := api.NewCategoryRepository(client)
	budgetRepo := api.NewBudgetRepository(client)
	transactionRepo := api.NewTransactionRepository(client)
	savingsRepo := api.NewSavingsRepository(client)
	analyticsRepo := api.NewAnalyticsRepository(client)

	// Reconciliation core
	cache := state.NewResourceCache()
	selector := state.NewPeriodSelector(domain.CurrentPeriod(time.Now()))

	// WebSocket hub and event bridge
	hub := websocket.NewHub()
	publisher := &hubPublisher{hub: hub}

	orchestrator := service.NewOrchestrator(service.OrchestratorConfig{
		Cache:        cache,
		Selector:     selector,
		Accounts:     accountRepo,
		Categories:   categoryRepo,
		Analytics:    analyticsRepo,
		Transactions: transactionRepo,
		Savings:      savingsRepo,
		Publisher:    publisher,
		NavHold:      cfg.NavHold,
	})

	// Initial load; a failure is not fatal, the UI starts on the empty view
	// and retries through the refresh endpoint
	if err := orchestrator.Start(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Initial load failed")
	}

	// Initialize services
	transactionService := service.NewTransactionService(transactionRepo, orchestrator)
	budgetService := service.NewBudgetService(budgetRepo, orchestrator)
	savingsService := service.NewSavingsService(savingsRepo, orchestrator)
	accountService := service.NewAccountService(accountRepo, orchestrator)
	categoryService := service.NewCategoryService(categoryRepo, orchestrator)

	// Initialize handlers
	viewHandler := handler.NewViewHandler(orchestrator)
	periodHandler := handler.NewPeriodHandler(orchestrator)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	savingsHandler := handler.NewSavingsHandler(savingsService)
	accountHandler := handler.NewAccountHandler(accountService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Rate limiting middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, viewHandler, periodHandler, transactionHandler, budgetHandler, savingsHandler, accountHandler, categoryHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// hubPublisher adapts the WebSocket hub to the orchestrator's publisher
type hubPublisher struct {
	hub *websocket.Hub
}

// ViewUpdated implements service.Publisher
func (p *hubPublisher) ViewUpdated(vm *domain.ViewModel) {
	p.hub.Publish(websocket.ViewUpdated(vm))
}

// StatusChanged implements service.Publisher
func (p *hubPublisher) StatusChanged(s service.Status) {
	p.hub.Publish(websocket.StatusChanged(map[string]string{"status": string(s)}))
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
