package employee

type CreateEmployeeRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type CreateEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

type EmployeeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
