package routes

import (
	"time"

	"flightly/handlers"
	"flightly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the conversational booking endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/chat", hb.ChatHandler)
		api.GET("/sessions/:id", hb.GetSessionHandler)
		api.DELETE("/sessions/:id", hb.ClearSessionHandler)
	}
}

// RegisterFlightRoutes registers read-only catalog endpoints.
func RegisterFlightRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/flights")
	{
		api.GET("/destinations", hb.ListDestinationsHandler)
		api.GET("/dates/validate", hb.ValidateDateHandler)
		api.GET("/:destination", hb.GetDestinationHandler)
		api.GET("/:destination/price", hb.GetPriceHandler)
		api.GET("/:destination/availability", hb.GetAvailabilityHandler)
		api.GET("/:destination/dates", hb.AvailableDatesHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for operator lookups.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminTokenMiddleware(hb.AdminToken))
		adminGroup.GET("/bookings/:email", hb.GetBookingByEmailHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/healthz", handlers.HealthHandler(hb.Health))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterAssistantRoutes(r, hb)
	RegisterFlightRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
