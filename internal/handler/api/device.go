package api

import (
	"net/http"

	reqdto "recipe-scheduler/internal/handler/dto/request"
	"recipe-scheduler/internal/handler/httperr"
	"recipe-scheduler/internal/handler/middleware"
	"recipe-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	cmds commands.DeviceCommands
}

func NewDeviceHandler(cmds commands.DeviceCommands) *DeviceHandler {
	return &DeviceHandler{cmds: cmds}
}

// @Summary Register push token
// @Description Register or refresh a device token that receives cooking reminders
// @Tags devices
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.RegisterDeviceRequest true "Device token"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /devices [post]
func (h *DeviceHandler) Register(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
		return
	}
	var req reqdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	if err := h.cmds.Register(c.Request.Context(), userID, req.Token, req.Platform); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unregister push token
// @Description Stop sending reminders to a device; unknown tokens are ignored
// @Tags devices
// @Security BearerAuth
// @Param token path string true "Device token"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /devices/{token} [delete]
func (h *DeviceHandler) Unregister(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
		return
	}
	if err := h.cmds.Unregister(c.Request.Context(), userID, c.Param("token")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
