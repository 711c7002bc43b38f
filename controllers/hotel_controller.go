package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type HotelController struct {
	HotelSvc   *services.HotelService
	BookingSvc *services.BookingService
}

func NewHotelController(hotelSvc *services.HotelService, bookingSvc *services.BookingService) *HotelController {
	return &HotelController{HotelSvc: hotelSvc, BookingSvc: bookingSvc}
}

// FindHotels handles GET /api/hotels?name= (case-insensitive partial match).
func (ctrl *HotelController) FindHotels(c *gin.Context) {
	hotels, err := ctrl.HotelSvc.FindByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetAvailability handles GET /api/hotels/:id/availability with
// checkIn, checkOut and guests query parameters.
func (ctrl *HotelController) GetAvailability(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	checkIn, err := utils.ParseDate(c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	guests, err := strconv.Atoi(strings.TrimSpace(c.Query("guests")))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guests must be an integer")
		return
	}

	result, err := ctrl.BookingSvc.GetAvailability(c.Request.Context(), uint(hotelID), checkIn, checkOut, guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
