package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"flightly/config"
	"flightly/database"
	bookingRepo "flightly/database/repository/booking"
	"flightly/handlers"
	"flightly/middleware"
	"flightly/routes"
	"flightly/services/booking"
	"flightly/services/catalog"
	"flightly/services/extraction"
	ai "flightly/services/intelligence"
	"flightly/services/notification"
	"flightly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// closers run in reverse order on shutdown.
type closers []func(ctx context.Context) error

func (c *closers) add(fn func(ctx context.Context) error) { *c = append(*c, fn) }

func (c closers) closeAll(ctx context.Context, logger *zap.Logger) {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](ctx); err != nil {
			logger.Warn("main: failed to release resource", zap.Error(err))
		}
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	health := utils.NewHealthChecker(2 * time.Second)
	var cleanup closers

	repo, err := openBookingStore(health, &cleanup)
	if err != nil {
		logger.Fatal("main: failed to open booking store", zap.String("store", config.AppConfig.BookingStore), zap.Error(err))
	}

	sessions, err := openSessionStore(health)
	if err != nil {
		logger.Fatal("main: failed to open session store", zap.String("store", config.AppConfig.SessionStore), zap.Error(err))
	}

	if config.AppConfig.BookingWindowDays > catalog.MaxWindowDays {
		logger.Warn("BOOKING_WINDOW_DAYS too large, clamping",
			zap.Int("configured", config.AppConfig.BookingWindowDays),
			zap.Int("max", catalog.MaxWindowDays))
	}
	flights := catalog.NewCatalog(time.Now, config.AppConfig.BookingWindowDays)
	extractor := extraction.NewEngine(flights, extraction.Options{DedupeMeals: config.AppConfig.DedupeMealPreferences})

	var publisher notification.BookingPublisher = notification.NoopPublisher{}
	if config.AppConfig.AMQPURL != "" {
		amqpPublisher, err := notification.NewAMQPPublisher(config.AppConfig.AMQPURL)
		if err != nil {
			logger.Fatal("main: failed to connect to message broker", zap.Error(err))
		}
		publisher = amqpPublisher
		health.Register("broker", func(context.Context) error {
			if amqpPublisher.IsClosed() {
				return errors.New("broker connection closed")
			}
			return nil
		})
	}
	cleanup.add(func(context.Context) error { return publisher.Close() })

	reconciler := &booking.DefaultReconciler{
		Repo:      repo,
		Catalog:   flights,
		Publisher: publisher,
		Now:       time.Now,
		Logger:    logger,
	}

	generator, err := newGenerator(&cleanup)
	if err != nil {
		logger.Fatal("main: failed to initialize text generation", zap.Error(err))
	}

	assistant := ai.NewDefaultAssistantService(generator, sessions, extractor, reconciler, flights,
		ai.WithGenerateTimeout(time.Duration(config.AppConfig.LLMTimeoutSeconds)*time.Second),
		ai.WithLogger(logger),
	)

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewAssistantHandler(assistant),
		handlers.NewFlightHandler(flights),
		handlers.NewAdminHandler(repo),
		config.AppConfig.AdminToken,
		health,
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	cleanup.closeAll(ctx, logger)

	logger.Sugar().Info("main: server stopped gracefully")
}

// openBookingStore selects the durable booking store from BOOKING_STORE.
func openBookingStore(health *utils.HealthChecker, cleanup *closers) (bookingRepo.BookingRepository, error) {
	switch store := strings.ToLower(config.AppConfig.BookingStore); store {
	case "", "memory":
		utils.GetLogger().Warn("Using in-memory booking store; bookings are lost on restart")
		return bookingRepo.NewMemoryBookingRepo(), nil

	case "mongo", "mongodb":
		if err := database.InitDB(); err != nil {
			return nil, err
		}
		cleanup.add(database.CloseDB)
		health.Register("bookings", func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		})
		return bookingRepo.NewMongoBookingRepo(database.MongoDatabase()), nil

	case "postgres", "mysql":
		driver, dialect := "postgres", bookingRepo.Postgres
		if store == "mysql" {
			driver, dialect = "mysql", bookingRepo.MySQL
		}
		db, err := database.OpenSQL(driver, config.AppConfig.SQLDSN)
		if err != nil {
			return nil, err
		}
		cleanup.add(func(context.Context) error { return db.Close() })
		health.Register("bookings", db.PingContext)

		repo := bookingRepo.NewSQLBookingRepo(db, dialect)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown booking store %q", store)
	}
}

// openSessionStore selects where assistant sessions live from SESSION_STORE.
func openSessionStore(health *utils.HealthChecker) (ai.SessionStore, error) {
	switch store := strings.ToLower(config.AppConfig.SessionStore); store {
	case "", "memory":
		return ai.NewMemorySessionStore(), nil
	case "redis":
		client, err := utils.GetSessionCacheClient()
		if err != nil {
			return nil, err
		}
		health.Register("sessions", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		return ai.NewRedisSessionStore(client, ttl), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", store)
	}
}

// newGenerator returns the Gemini client, or a generator that always fails
// when no key is configured so every turn gets the fallback reply.
func newGenerator(cleanup *closers) (ai.TextGenerator, error) {
	if config.AppConfig.GeminiAPIKey == "" {
		utils.GetLogger().Warn("GEMINI_API_KEY not set; assistant replies will use the fallback text")
		return ai.GeneratorFunc(func(context.Context, []string) (string, error) {
			return "", errors.New("text generation is not configured")
		}), nil
	}
	client, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		return nil, err
	}
	cleanup.add(func(context.Context) error { return client.Close() })
	return client, nil
}
