package timeentry

import "time"

// TimeEntry is one work session. ClockOut is NULL while the session is open.
// The partial unique index enforces at most one open session per employee at
// the store level, so a racing clock-in cannot slip past the service check.
type TimeEntry struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID string     `gorm:"column:employee_id;not null;index;uniqueIndex:uq_time_entries_open,where:clock_out IS NULL"`
	ClockIn    time.Time  `gorm:"column:clock_in;not null"`
	ClockOut   *time.Time `gorm:"column:clock_out"`
	TotalHours *float64   `gorm:"column:total_hours"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
