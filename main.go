// File: agendly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly/config"
	"agendly/database"
	clientRepoPkg "agendly/database/repository/client"
	providerRepoPkg "agendly/database/repository/provider"
	reservationRepoPkg "agendly/database/repository/reservation"
	serviceRepoPkg "agendly/database/repository/service"
	"agendly/handlers"
	"agendly/middleware"
	"agendly/routes"
	"agendly/services/catalog"
	clientSvc "agendly/services/client"
	providerSvc "agendly/services/provider"
	reservationSvc "agendly/services/reservation"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	cliRepo := clientRepoPkg.NewMongoClientRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	resRepo := reservationRepoPkg.NewMongoReservationRepo()

	// services.
	providerService := &providerSvc.DefaultProviderService{Repo: provRepo}
	clientService := &clientSvc.DefaultClientService{Repo: cliRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: svcRepo}
	reservationService := &reservationSvc.DefaultReservationService{
		Repo:         resRepo,
		ProviderRepo: provRepo,
		ClientRepo:   cliRepo,
		ServiceRepo:  svcRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Client:      &handlers.ClientHandler{Service: clientService},
		Provider:    &handlers.ProviderHandler{Service: providerService},
		Catalog:     &handlers.CatalogHandler{Service: catalogService},
		Reservation: &handlers.ReservationHandler{Service: reservationService},
	}

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
