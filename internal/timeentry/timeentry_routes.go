package timeentry

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, mws ...gin.HandlerFunc) {
	entries := r.Group("/time")
	entries.Use(mws...)
	{
		entries.POST("/clockin", h.ClockIn)
		entries.POST("/clockout", h.ClockOut)
	}
}
