package routes

import (
	"sheetbase/internal/handlers"

	"github.com/gin-gonic/gin"
)

type PublicRoutes struct {
	publicHandler *handlers.PublicHandler
	mw            Middlewares
}

func NewPublicRoutes(publicHandler *handlers.PublicHandler, mw Middlewares) *PublicRoutes {
	return &PublicRoutes{
		publicHandler: publicHandler,
		mw:            mw,
	}
}

func (r *PublicRoutes) RegisterRoutes(router *gin.RouterGroup) {
	public := router.Group("/public/files/:id")
	// Anonymous callers are admitted here; RequireView decides against the
	// configured minimum role. Form submission mirrors the view check.
	public.Use(r.mw.OptionalAuthenticate, r.mw.RequireView)
	{
		public.GET("/rows", r.publicHandler.Rows)
		public.GET("/search", r.publicHandler.Search)
		public.POST("/rows", r.publicHandler.SubmitRow)
	}
}
