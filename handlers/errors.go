package handlers

import (
	"errors"
	"net/http"

	"beautyconnect/services/pro"
	"beautyconnect/services/reservation"
	"beautyconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondReservationError translates reservation service errors to the HTTP
// contract: validation and conflicts are 400, absent resources 404, identity
// mismatches 403. Anything unexpected degrades to a 500 instead of escaping.
func respondReservationError(c *gin.Context, err error) {
	var vErr *reservation.ValidationError
	if errors.As(err, &vErr) {
		if len(vErr.Fields) > 0 {
			utils.JSONFieldErrors(c, vErr.Message, vErr.Fields)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
		return
	}
	var nfErr *reservation.NotFoundError
	if errors.As(err, &nfErr) {
		utils.JSONError(c, http.StatusNotFound, nfErr.Error(), "")
		return
	}
	var cErr *reservation.ConflictError
	if errors.As(err, &cErr) {
		utils.JSONError(c, http.StatusBadRequest, cErr.Reason, "")
		return
	}
	var aErr *reservation.AuthorizationError
	if errors.As(err, &aErr) {
		utils.JSONError(c, http.StatusForbidden, aErr.Message, "")
		return
	}
	utils.GetLogger().Error("reservation request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}

// respondProError does the same for the pro catalog/availability service.
func respondProError(c *gin.Context, err error) {
	var vErr *pro.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONFieldErrors(c, vErr.Message, vErr.Fields)
		return
	}
	var nfErr *pro.NotFoundError
	if errors.As(err, &nfErr) {
		utils.JSONError(c, http.StatusNotFound, nfErr.Error(), "")
		return
	}
	utils.GetLogger().Error("pro request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}

// identityFromContext reads the authenticated caller set by JWTAuthMiddleware.
func identityFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
