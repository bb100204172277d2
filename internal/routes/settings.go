package routes

import (
	"sheetbase/internal/handlers"

	"github.com/gin-gonic/gin"
)

type SettingsRoutes struct {
	settingsHandler *handlers.SettingsHandler
	mw              Middlewares
}

func NewSettingsRoutes(settingsHandler *handlers.SettingsHandler, mw Middlewares) *SettingsRoutes {
	return &SettingsRoutes{
		settingsHandler: settingsHandler,
		mw:              mw,
	}
}

func (r *SettingsRoutes) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	settings.Use(r.mw.Authenticate, r.mw.RequireManage)
	{
		settings.GET("", r.settingsHandler.Get)
		settings.PUT("", r.settingsHandler.Update)
	}
}
