package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festquote/config"
	"festquote/handlers"
	"festquote/middleware"
	"festquote/routes"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/session"
	"festquote/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sessionCache := utils.GetSessionCacheClient()
	ctx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(ctx, sessionCache, 60*time.Second)

	var images catalog.ImageResolver
	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}
	if cld != nil {
		images = cld
	}

	source := catalog.NewClient(config.AppConfig.DataAPIURL, config.AppConfig.DataAPITimeout, config.AppConfig.DataAPIRequireAuth)
	gateway := catalog.NewGateway(source, images, logger)

	dispatcher, err := dispatch.NewDispatcher(config.AppConfig.WhatsAppHost, config.AppConfig.WhatsAppNumber, dispatch.ClientOpener{}, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to configure dispatcher: %v", err)
	}

	store := session.NewRedisStore(sessionCache, config.AppConfig.SessionTTL, config.AppConfig.SubmitLockTTL)
	sessions := session.NewService(store, gateway, dispatcher, logger).WithSubmitTimeout(config.AppConfig.SubmitLockTTL)

	quoteHandler := handlers.NewQuoteHandler(sessions, config.AppConfig.DataAPIAnonKey)
	handlerBundle := handlers.NewHandlerBundle(quoteHandler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := sessionCache.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close redis: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
