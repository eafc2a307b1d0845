package handlers

import (
	"net/http"

	bookingRepo "flightly/database/repository/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves operator lookups over the durable booking store.
type AdminHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewAdminHandler(repo bookingRepo.BookingRepository) *AdminHandler {
	return &AdminHandler{Repo: repo}
}

// GetBookingByEmailHandler returns the one booking stored for an email.
func (ah *AdminHandler) GetBookingByEmailHandler(c *gin.Context) {
	email := c.Param("email")
	booking, err := ah.Repo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Failed to fetch booking", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking for this email"})
		return
	}
	c.JSON(http.StatusOK, booking)
}
