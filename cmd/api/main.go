package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "NobelDashboard/docs"
	"NobelDashboard/internal/config"
	"NobelDashboard/internal/dashboard"
	"NobelDashboard/internal/handler"
	"NobelDashboard/internal/metrics"
	"NobelDashboard/internal/middleware"
	"NobelDashboard/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Nobel Prize Dashboard API
// @version      1.0
// @description  Filters Nobel prize records by year and category, edits them, and returns map and scatter charts.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main(): failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.Open(ctx, storage.Options{
		Driver:          cfg.StoreDriver,
		MongoURI:        cfg.MongoURI,
		MongoDatabase:   cfg.MongoDatabase,
		MongoCollection: cfg.MongoCollection,
		SQLitePath:      cfg.SQLitePath,
	})
	cancel()
	if err != nil {
		log.Fatalf("main(): failed to open %s store: %v", cfg.StoreDriver, err)
	}

	recorder := metrics.New()
	controller := dashboard.NewController(store, log.Default(), recorder)
	dashboardHandler := handler.NewDashboardHandler(controller).WithSocketRateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/", dashboardHandler.Page)
	router.GET("/healthz", dashboardHandler.Health)
	router.GET("/metrics", gin.WrapH(recorder.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/options", dashboardHandler.Options)
		api.POST("/dashboard", middleware.RateLimitMiddleware(cfg.RateLimitPerSecond, cfg.RateLimitBurst), dashboardHandler.Update)
	}
	router.GET("/ws/dashboard", middleware.RateLimitMiddleware(cfg.RateLimitPerSecond, cfg.RateLimitBurst), dashboardHandler.HandleDashboardSocket)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Printf("main(): listening on %s (store: %s)", cfg.HTTPAddr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main(): server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("main(): shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("main(): server shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("main(): store close: %v", err)
	}
}
