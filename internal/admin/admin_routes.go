package admin

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	adm := r.Group("/admin")
	{
		adm.GET("/overview", h.Overview)
		adm.POST("/reset", h.Reset)
	}
}
