package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeclock/internal/admin"
	"go-timeclock/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAdminService struct {
	OverviewFn func(ctx context.Context) (admin.OverviewResponse, error)
	ResetFn    func(ctx context.Context) (admin.ResetResponse, error)
}

func (f *fakeAdminService) Overview(ctx context.Context) (admin.OverviewResponse, error) {
	return f.OverviewFn(ctx)
}
func (f *fakeAdminService) Reset(ctx context.Context) (admin.ResetResponse, error) {
	return f.ResetFn(ctx)
}

func TestAdminHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeAdminService{
		OverviewFn: func(ctx context.Context) (admin.OverviewResponse, error) {
			return admin.OverviewResponse{
				TotalEmployees: 5,
				ActiveClockIns: 2,
				OnLunch:        1,
				TodayEntries:   3,
			}, nil
		},
	}
	h := admin.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/overview", nil)

	h.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalEmployees":5`)
	assert.Contains(t, w.Body.String(), `"activeClockIns":2`)
}

func TestAdminHandler_Reset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAdminService{
			ResetFn: func(ctx context.Context) (admin.ResetResponse, error) {
				return admin.ResetResponse{Message: "Database reset successfully"}, nil
			},
		}
		h := admin.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/reset", nil)

		h.Reset(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Database reset successfully")
	})

	t.Run("failure", func(t *testing.T) {
		svc := &fakeAdminService{
			ResetFn: func(ctx context.Context) (admin.ResetResponse, error) {
				return admin.ResetResponse{}, apperror.New(apperror.CodeInternalError, "Failed to reset database", 500)
			},
		}
		h := admin.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/reset", nil)

		h.Reset(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
