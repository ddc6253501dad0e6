package handlers

import (
	"net/http"

	"psrcustoms/models"
	"psrcustoms/services/booking"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes appointment bookings.
type BookingHandler struct {
	Bookings booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// CreateBookingHandler handles POST /api/bookings. This is the one public
// write endpoint on the booking side.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.GetLogger().Warn("Invalid booking request", zap.Error(err))
		badRequest(c, err)
		return
	}

	b, err := h.Bookings.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler handles GET /api/bookings (admin).
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.List()
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id (admin).
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Bookings.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingHandler handles PUT /api/bookings/:id (admin). Only status,
// date, and notes are writable.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var in models.BookingUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.GetLogger().Warn("Invalid booking update request", zap.Error(err))
		badRequest(c, err)
		return
	}

	b, err := h.Bookings.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id (admin).
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Bookings.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
