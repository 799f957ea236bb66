package lunchbreak

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, mws ...gin.HandlerFunc) {
	lunch := r.Group("/time/lunch")
	lunch.Use(mws...)
	{
		lunch.POST("/start", h.StartLunch)
		lunch.POST("/end", h.EndLunch)
	}
}
