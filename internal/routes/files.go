package routes

import (
	"sheetbase/internal/handlers"

	"github.com/gin-gonic/gin"
)

type FileRoutes struct {
	fileHandler *handlers.FileHandler
	mw          Middlewares
}

func NewFileRoutes(fileHandler *handlers.FileHandler, mw Middlewares) *FileRoutes {
	return &FileRoutes{
		fileHandler: fileHandler,
		mw:          mw,
	}
}

func (r *FileRoutes) RegisterRoutes(router *gin.RouterGroup) {
	files := router.Group("/files")
	files.Use(r.mw.Authenticate, r.mw.RequireManage)
	{
		files.POST("", r.fileHandler.Upload)
		files.GET("", r.fileHandler.List)
		files.DELETE("/:id", r.fileHandler.Delete)
		files.GET("/:id/data", r.fileHandler.Page)
		files.GET("/:id/config", r.fileHandler.GetConfig)
		files.PUT("/:id/config", r.fileHandler.SetConfig)
	}
}
