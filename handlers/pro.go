package handlers

import (
	"net/http"

	"beautyconnect/models"
	"beautyconnect/services/pro"
	"beautyconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProHandler exposes the pro catalog and availability endpoints.
type ProHandler struct {
	Svc pro.Service
}

// NewProHandler creates a new ProHandler instance.
func NewProHandler(svc pro.Service) *ProHandler {
	return &ProHandler{Svc: svc}
}

// GetServicesHandler handles GET /api/pros/:proId/services. Public.
func (h *ProHandler) GetServicesHandler(c *gin.Context) {
	details, err := h.Svc.GetDetails(c.Request.Context(), c.Param("proId"))
	if err != nil {
		respondProError(c, err)
		return
	}
	services := details.Services
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"proId": details.ProID, "services": services})
}

// CreateServiceHandler handles PUT /api/pros/services. Pro role required.
func (h *ProHandler) CreateServiceHandler(c *gin.Context) {
	proID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	svc, err := h.Svc.CreateService(c.Request.Context(), proID, req)
	if err != nil {
		respondProError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PATCH /api/pros/services/:serviceId.
func (h *ProHandler) UpdateServiceHandler(c *gin.Context) {
	proID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	svc, err := h.Svc.UpdateService(c.Request.Context(), proID, c.Param("serviceId"), req)
	if err != nil {
		respondProError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/pros/services/:serviceId.
func (h *ProHandler) DeleteServiceHandler(c *gin.Context) {
	proID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Svc.DeleteService(c.Request.Context(), proID, c.Param("serviceId")); err != nil {
		respondProError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// GetAvailabilityHandler handles GET /api/pros/:proId/availability. Public.
func (h *ProHandler) GetAvailabilityHandler(c *gin.Context) {
	proID := c.Param("proId")
	availability, err := h.Svc.GetAvailability(c.Request.Context(), proID)
	if err != nil {
		respondProError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proId": proID, "availability": availability})
}

// SetAvailabilityHandler handles PUT /api/pros/availability. Pro role required.
func (h *ProHandler) SetAvailabilityHandler(c *gin.Context) {
	proID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Svc.SetAvailability(c.Request.Context(), proID, req.Availability); err != nil {
		respondProError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}
