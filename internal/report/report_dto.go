package report

const (
	StateClockedOut = "CLOCKED_OUT"
	StateClockedIn  = "CLOCKED_IN"
	StateOnLunch    = "ON_LUNCH"
)

type EmployeeInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type StatusInfo struct {
	ClockedIn   bool    `json:"clockedIn"`
	OnLunch     bool    `json:"onLunch"`
	ClockInTime *string `json:"clockInTime"`
	State       string  `json:"state"`
}

type StatusResponse struct {
	Employee EmployeeInfo `json:"employee"`
	Status   StatusInfo   `json:"status"`
}

// HistoryRow is one work session joined with at most one same-day lunch
// break. Break fields are null when no break matched.
type HistoryRow struct {
	ID              uint     `json:"id"`
	ClockIn         string   `json:"clockIn"`
	ClockOut        *string  `json:"clockOut"`
	TotalHours      *float64 `json:"totalHours"`
	LunchStart      *string  `json:"lunchStart"`
	LunchEnd        *string  `json:"lunchEnd"`
	DurationMinutes *int     `json:"durationMinutes"`
}
