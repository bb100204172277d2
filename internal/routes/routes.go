package routes

import (
	"net/http"

	"sheetbase/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Middlewares carries the request guards the route groups compose.
type Middlewares struct {
	Authenticate         gin.HandlerFunc
	OptionalAuthenticate gin.HandlerFunc
	RequireManage        gin.HandlerFunc
	RequireView          gin.HandlerFunc
}

func RegisterRoutes(
	router *gin.Engine,
	mw Middlewares,
	authHandler *handlers.AuthHandler,
	fileHandler *handlers.FileHandler,
	publicHandler *handlers.PublicHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	api := router.Group("/api/v1")

	NewAuthRoutes(authHandler, mw).RegisterRoutes(api)
	NewFileRoutes(fileHandler, mw).RegisterRoutes(api)
	NewPublicRoutes(publicHandler, mw).RegisterRoutes(api)
	NewSettingsRoutes(settingsHandler, mw).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
