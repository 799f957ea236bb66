package timeentry

type ClockRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type ClockInResponse struct {
	Message string `json:"message"`
	EntryID uint   `json:"entryId"`
	ClockIn string `json:"clockIn"`
}

type ClockOutResponse struct {
	Message    string  `json:"message"`
	TotalHours float64 `json:"totalHours"`
	ClockOut   string  `json:"clockOut"`
}
