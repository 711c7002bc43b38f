package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

// AdminController exposes the testing helpers (seed/reset). Neither is
// part of the booking lifecycle.
type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

// Seed handles POST /api/admin/seed. Idempotent: the response says
// whether anything was created.
func (ctrl *AdminController) Seed(c *gin.Context) {
	result, err := ctrl.AdminSvc.Seed(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// Reset handles POST /api/admin/reset. Full wipe, reports counts.
func (ctrl *AdminController) Reset(c *gin.Context) {
	result, err := ctrl.AdminSvc.Reset(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
