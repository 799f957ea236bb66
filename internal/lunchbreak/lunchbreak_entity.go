package lunchbreak

import "time"

// LunchBreak is one lunch break. EndTime is NULL while the break is open.
// The partial unique index enforces at most one open break per employee,
// independent of work-session state.
type LunchBreak struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID      string     `gorm:"column:employee_id;not null;index;uniqueIndex:uq_lunch_breaks_open,where:end_time IS NULL"`
	StartTime       time.Time  `gorm:"column:start_time;not null"`
	EndTime         *time.Time `gorm:"column:end_time"`
	DurationMinutes *int       `gorm:"column:duration_minutes"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (LunchBreak) TableName() string {
	return "lunch_breaks"
}
