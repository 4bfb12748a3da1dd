// File: yogasund/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yogasund/braincore"
	"yogasund/config"
	"yogasund/cron"
	"yogasund/database"
	communityRepoPkg "yogasund/database/repository/community"
	contentRepoPkg "yogasund/database/repository/content"
	"yogasund/handlers"
	"yogasund/middleware"
	"yogasund/routes"
	"yogasund/services/auth"
	"yogasund/services/booking"
	"yogasund/services/content"
	"yogasund/services/term"
	"yogasund/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Braincore client: every schedule, auth and booking call goes upstream
	// through this one client.
	bcClient := braincore.NewClient(
		config.AppConfig.BraincoreBaseURL,
		config.AppConfig.BraincoreAPIKey,
		braincore.DefaultHTTPClient(),
	)

	// Repositories.
	contentRepo := contentRepoPkg.NewMongoContentRepo()
	communityRepo := communityRepoPkg.NewMongoCommunityRepo()

	// Async queue client for deferred payment sweeps.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// Services.
	sessionStore := auth.NewRedisSessionStore(utils.GetSessionCacheClient())
	authService := &auth.DefaultAuthService{
		Client: bcClient,
		Store:  sessionStore,
	}
	handlers.SetSessionInvalidator(authService)

	bookingService := &booking.DefaultBookingService{Client: bcClient}
	paymentService := &booking.StripePaymentService{
		Booking: bookingService,
		Client:  bcClient,
		Queue:   queueClient,
	}
	termService := &term.DefaultTermBookingService{
		Source: bcClient,
		Store:  term.NewRedisSessionStore(utils.GetSessionCacheClient()),
	}
	contentService := &content.DefaultContentService{Repo: contentRepo}
	communityService := &content.DefaultCommunityService{Repo: communityRepo}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		sessionStore,
		bcClient,
		authService,
		bookingService,
		paymentService,
		termService,
		contentService,
		communityService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitPaymentSweepWorker()
	utils.StartHealthMonitor(
		utils.GetCacheClient(),
		utils.GetSessionCacheClient(),
		database.MongoClient,
		time.Duration(config.AppConfig.HealthCheckSec)*time.Second,
	)

	// Start the HTTP server.
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
