package lunchbreak

type LunchRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type StartLunchResponse struct {
	Message   string `json:"message"`
	LunchID   uint   `json:"lunchId"`
	StartTime string `json:"startTime"`
}

type EndLunchResponse struct {
	Message         string `json:"message"`
	DurationMinutes int    `json:"durationMinutes"`
	EndTime         string `json:"endTime"`
}
