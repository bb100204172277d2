package routes

import (
	"sheetbase/internal/handlers"

	"github.com/gin-gonic/gin"
)

type AuthRoutes struct {
	authHandler *handlers.AuthHandler
	mw          Middlewares
}

func NewAuthRoutes(authHandler *handlers.AuthHandler, mw Middlewares) *AuthRoutes {
	return &AuthRoutes{
		authHandler: authHandler,
		mw:          mw,
	}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.mw.Authenticate, r.authHandler.Logout)
	}
}
