package report

import (
	"net/http"
	"strconv"

	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Status(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.CurrentStatus(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	id := c.Param("id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	rows, err := h.service.History(c.Request.Context(), id, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(int64(len(rows)), 1, limit)
	response.Success(c, http.StatusOK, rows, &meta)
}
