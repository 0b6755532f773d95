package routes

import (
	"time"

	"agendly/handlers"
	"agendly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers client account endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.Client.Register)
		api.POST("/login", hb.Client.Login)

		api.Use(middleware.JWTAuthClientMiddleware())
		api.GET("/me", hb.Client.Me)
	}
}

// RegisterProviderRoutes registers provider account and availability endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Provider.Register)
		api.POST("/login", hb.Provider.Login)
		api.GET("", hb.Provider.List)
		api.GET("/:id", hb.Provider.Get)
		api.GET("/:id/working-windows", hb.Provider.GetWorkingWindows)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.PATCH("/me", hb.Provider.Update)
		protected.DELETE("/me", hb.Provider.Delete)
		protected.PUT("/me/working-windows", hb.Provider.SetWorkingWindows)
	}
}

// RegisterCatalogRoutes registers the service catalog endpoints. Reads are
// public; writes require a provider token.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.List)
		api.GET("/:id", hb.Catalog.Get)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.POST("", hb.Catalog.Create)
		protected.PATCH("/:id", hb.Catalog.Update)
		protected.DELETE("/:id", hb.Catalog.Delete)
	}
}

// RegisterReservationRoutes sets up the endpoints for the booking engine.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthClientMiddleware())
		api.POST("", hb.Reservation.Create)
		api.GET("", hb.Reservation.List)
		api.GET("/:id", hb.Reservation.Get)
		api.PATCH("/:id", hb.Reservation.Update)
		api.DELETE("/:id", hb.Reservation.Cancel)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r)
}
