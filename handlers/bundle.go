package handlers

import (
	"flightly/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	ChatHandler         gin.HandlerFunc
	GetSessionHandler   gin.HandlerFunc
	ClearSessionHandler gin.HandlerFunc

	// Flight catalog endpoints
	ListDestinationsHandler gin.HandlerFunc
	GetDestinationHandler   gin.HandlerFunc
	GetPriceHandler         gin.HandlerFunc
	GetAvailabilityHandler  gin.HandlerFunc
	AvailableDatesHandler   gin.HandlerFunc
	ValidateDateHandler     gin.HandlerFunc

	// Admin endpoints
	AdminToken               string
	GetBookingByEmailHandler gin.HandlerFunc

	Health *utils.HealthChecker
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(assistant *AssistantHandler, flights *FlightHandler, admin *AdminHandler, adminToken string, health *utils.HealthChecker) *HandlerBundle {
	return &HandlerBundle{
		ChatHandler:         assistant.ChatHandler,
		GetSessionHandler:   assistant.GetSessionHandler,
		ClearSessionHandler: assistant.ClearSessionHandler,

		ListDestinationsHandler: flights.ListDestinationsHandler,
		GetDestinationHandler:   flights.GetDestinationHandler,
		GetPriceHandler:         flights.GetPriceHandler,
		GetAvailabilityHandler:  flights.GetAvailabilityHandler,
		AvailableDatesHandler:   flights.AvailableDatesHandler,
		ValidateDateHandler:     flights.ValidateDateHandler,

		AdminToken:               adminToken,
		GetBookingByEmailHandler: admin.GetBookingByEmailHandler,

		Health: health,
	}
}
