package handlers

import (
	"net/http"

	"flightly/models"

	"github.com/gin-gonic/gin"
)

// FlightCatalog is the read side of the flight catalog served over HTTP.
type FlightCatalog interface {
	Destinations() []string
	Entry(destination string) (models.CatalogEntry, bool)
	GetPrice(destination string, class models.FareClass) (int, bool)
	FareClasses() []models.FareClass
	MealOptions() models.MealVocabulary
	SeatPreferences() models.SeatVocabulary
	IsValidDate(date string) (bool, string)
	CheckAvailability(destination, date string, class models.FareClass) int
	AvailableDates(destination string) []string
}

type FlightHandler struct {
	Catalog FlightCatalog
}

func NewFlightHandler(catalog FlightCatalog) *FlightHandler {
	return &FlightHandler{Catalog: catalog}
}

// ListDestinationsHandler returns destinations and the controlled vocabularies.
func (h *FlightHandler) ListDestinationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"destinations":     h.Catalog.Destinations(),
		"classes":          h.Catalog.FareClasses(),
		"meal_options":     h.Catalog.MealOptions(),
		"seat_preferences": h.Catalog.SeatPreferences(),
	})
}

func (h *FlightHandler) GetDestinationHandler(c *gin.Context) {
	entry, ok := h.Catalog.Entry(c.Param("destination"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown destination"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetPriceHandler quotes a per-ticket price. Class defaults to economy.
func (h *FlightHandler) GetPriceHandler(c *gin.Context) {
	destination := c.Param("destination")
	class := models.FareClass(c.DefaultQuery("class", string(models.Economy)))

	price, ok := h.Catalog.GetPrice(destination, class)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No fare for this destination and class"})
		return
	}
	entry, _ := h.Catalog.Entry(destination)
	fareClass, _ := models.ParseFareClass(string(class))
	fare, _ := entry.Fare(fareClass)
	c.JSON(http.StatusOK, gin.H{
		"destination": entry.Destination,
		"class":       fareClass,
		"price":       price,
		"currency":    fare.Currency,
	})
}

// GetAvailabilityHandler reports seats left; unknown inputs report 0.
func (h *FlightHandler) GetAvailabilityHandler(c *gin.Context) {
	destination := c.Param("destination")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	class := models.FareClass(c.DefaultQuery("class", string(models.Economy)))
	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"date":        date,
		"class":       class,
		"seats":       h.Catalog.CheckAvailability(destination, date, class),
	})
}

func (h *FlightHandler) AvailableDatesHandler(c *gin.Context) {
	destination := c.Param("destination")
	if _, ok := h.Catalog.Entry(destination); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown destination"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": destination, "dates": h.Catalog.AvailableDates(destination)})
}

func (h *FlightHandler) ValidateDateHandler(c *gin.Context) {
	valid, reason := h.Catalog.IsValidDate(c.Query("date"))
	c.JSON(http.StatusOK, gin.H{"valid": valid, "reason": reason})
}
