package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	CurrentStatusFn func(ctx context.Context, employeeID string) (report.StatusResponse, error)
	HistoryFn       func(ctx context.Context, employeeID string, limit int) ([]report.HistoryRow, error)
}

func (f *fakeReportService) CurrentStatus(ctx context.Context, employeeID string) (report.StatusResponse, error) {
	return f.CurrentStatusFn(ctx, employeeID)
}
func (f *fakeReportService) History(ctx context.Context, employeeID string, limit int) ([]report.HistoryRow, error) {
	return f.HistoryFn(ctx, employeeID, limit)
}

func TestReportHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeReportService{
			CurrentStatusFn: func(ctx context.Context, employeeID string) (report.StatusResponse, error) {
				assert.Equal(t, "EMP01", employeeID)
				return report.StatusResponse{
					Employee: report.EmployeeInfo{ID: "EMP01", Name: "Jane Doe"},
					Status:   report.StatusInfo{ClockedIn: true, State: report.StateClockedIn},
				}, nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/EMP01/status", nil)
		c.Params = gin.Params{{Key: "id", Value: "EMP01"}}

		h.Status(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"clockedIn":true`)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := &fakeReportService{
			CurrentStatusFn: func(ctx context.Context, employeeID string) (report.StatusResponse, error) {
				return report.StatusResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/GHOST/status", nil)
		c.Params = gin.Params{{Key: "id", Value: "GHOST"}}

		h.Status(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReportHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit from query", func(t *testing.T) {
		var gotLimit int
		svc := &fakeReportService{
			HistoryFn: func(ctx context.Context, employeeID string, limit int) ([]report.HistoryRow, error) {
				gotLimit = limit
				return []report.HistoryRow{}, nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/EMP01/history?limit=7", nil)
		c.Params = gin.Params{{Key: "id", Value: "EMP01"}}

		h.History(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, gotLimit)
	})

	t.Run("empty history is an empty array", func(t *testing.T) {
		svc := &fakeReportService{
			HistoryFn: func(ctx context.Context, employeeID string, limit int) ([]report.HistoryRow, error) {
				return []report.HistoryRow{}, nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/EMP01/history", nil)
		c.Params = gin.Params{{Key: "id", Value: "EMP01"}}

		h.History(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}
