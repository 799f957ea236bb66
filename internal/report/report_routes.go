package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employee")
	{
		employees.GET("/:id/status", h.Status)
		employees.GET("/:id/history", h.History)
	}
}
