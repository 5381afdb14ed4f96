package handlers

import (
	"errors"
	"net/http"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor roster endpoints.
type DoctorHandler struct {
	Svc    doctor.Service
	Logger *zap.Logger
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.Service, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

// ListDoctors handles GET /api/doctors.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListDoctors: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /api/doctors.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Svc.Add(c.Request.Context(), doc)
	if err != nil {
		h.Logger.Error("AddDoctor: failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// RemoveDoctor handles DELETE /api/doctors/:id.
func (h *DoctorHandler) RemoveDoctor(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
		h.Logger.Error("RemoveDoctor: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
