// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingPayload struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	RoomType string `json:"roomType" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings. The server picks a concrete
// room of the requested type that fits the guest count; the client only
// gets the reference back and can look up details with it.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reference, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), services.BookingRequest{
		HotelID:  payload.HotelID,
		RoomType: models.RoomType(strings.ToLower(strings.TrimSpace(payload.RoomType))),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   payload.Guests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"reference": reference})
}

// GetBookingByReference handles GET /api/bookings/:reference.
func (ctrl *BookingController) GetBookingByReference(c *gin.Context) {
	detail, err := ctrl.BookingSvc.GetBookingByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detail)
}

// respondServiceError maps the service layer's typed outcomes onto HTTP
// statuses. No-room-available and commit conflicts both come back 409:
// either way the caller should retry against fresh state.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNoRoomAvailable),
		errors.Is(err, services.ErrBookingConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrReferenceExhausted):
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("request failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
