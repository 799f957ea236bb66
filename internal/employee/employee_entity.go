package employee

import "time"

// Bootstrap admin seeded on first initialization. Exactly one employee
// carries this identity.
const (
	BootstrapAdminID    = "ADMIN001"
	BootstrapAdminName  = "Admin User"
	BootstrapAdminEmail = "admin@company.com"
)

type Employee struct {
	ID        string `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;not null"`
	Email     string `gorm:"column:email"`
	IsAdmin   bool   `gorm:"column:is_admin;not null;default:false"`
	CreatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}
