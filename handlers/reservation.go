package handlers

import (
	"net/http"

	"beautyconnect/models"
	"beautyconnect/services/reservation"
	"beautyconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes the booking lifecycle endpoints.
type ReservationHandler struct {
	Svc reservation.Service
}

// NewReservationHandler creates a new ReservationHandler instance.
func NewReservationHandler(svc reservation.Service) *ReservationHandler {
	return &ReservationHandler{Svc: svc}
}

// GetAvailableSlotsHandler handles GET /api/pros/:proId/slots?date=&serviceId=.
func (h *ReservationHandler) GetAvailableSlotsHandler(c *gin.Context) {
	proID := c.Param("proId")
	date := c.Query("date")
	serviceID := c.Query("serviceId")

	resp, err := h.Svc.GetAvailableSlots(c.Request.Context(), proID, date, serviceID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateReservationHandler handles POST /api/reservations. The client id is
// taken from the authenticated identity, never from the body.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	clientID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("Invalid reservation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ClientID = clientID

	res, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListClientReservationsHandler handles GET /api/reservations/client/:clientId.
// Owner-only: the path id must match the authenticated identity.
func (h *ReservationHandler) ListClientReservationsHandler(c *gin.Context) {
	callerID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	clientID := c.Param("clientId")
	if clientID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only list your own reservations"})
		return
	}

	reservations, err := h.Svc.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// ListProReservationsHandler handles GET /api/reservations/pro/:proId.
// Owner-only: the path id must match the authenticated identity.
func (h *ReservationHandler) ListProReservationsHandler(c *gin.Context) {
	callerID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	proID := c.Param("proId")
	if proID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only list your own reservations"})
		return
	}

	reservations, err := h.Svc.ListByPro(c.Request.Context(), proID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateReservationStatusHandler handles PATCH /api/reservations/:id/status.
func (h *ReservationHandler) UpdateReservationStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid status in request body"})
		return
	}

	res, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
