package models

type EmployeeRole string

const (
	RoleSalesperson EmployeeRole = "salesperson"
	RoleManager     EmployeeRole = "manager"
)

type Employee struct {
	Base
	FirstName   string       `gorm:"size:200;not null"`
	MiddleName  string       `gorm:"size:200"`
	LastName    string       `gorm:"size:200;not null"`
	Username    string       `gorm:"size:200;uniqueIndex;not null"`
	Email       string       `gorm:"size:200;uniqueIndex;not null"`
	Password    string       `gorm:"size:200;not null"`
	HomeAddress string       `gorm:"size:500;not null"`
	Role        EmployeeRole `gorm:"size:200;not null"`
	IsAdmin     bool         `gorm:"default:false"`

	Sessions []EmployeeSession `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// EmployeeSession ties one opaque session token (the row id) to an employee.
// Rows are removed on logout, on expiry, and when the employee is deleted.
type EmployeeSession struct {
	Base
	EmployeeID string `gorm:"type:varchar(36);not null;index"`

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}
