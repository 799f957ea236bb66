package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-timeclock/internal/employee"
	employeeerrors "go-timeclock/internal/employee/errors"
	"go-timeclock/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeEmployeeService struct {
	RegisterFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error)
	LookupFn   func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Register(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeEmployeeService) Lookup(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.LookupFn(ctx, id)
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			RegisterFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				assert.Equal(t, "EMP01", req.ID)
				assert.Equal(t, "Jane Doe", req.Name)
				return employee.CreateEmployeeResponse{
					Message:    "Employee created successfully",
					EmployeeID: req.ID,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"id":"EMP01","name":"Jane Doe","email":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employeeId":"EMP01"`)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"id":"EMP01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("duplicate id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			RegisterFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				return employee.CreateEmployeeResponse{}, employeeerrors.ErrEmployeeIDExists
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"id":"EMP01","name":"Jane Doe"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Employee ID already exists")
	})
}
