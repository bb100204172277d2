package handlers

import (
	"net/http"

	"sheetbase/internal/responses"
	"sheetbase/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.Success(c, http.StatusOK, settings, "")
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var in services.Settings
	if err := c.ShouldBindJSON(&in); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	saved, err := h.settingsService.Update(in)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.Success(c, http.StatusOK, saved, "Settings saved")
}
