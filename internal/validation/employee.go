package validation

import (
	"strings"

	"pharmacy-system/internal/database/models"
)

type EmployeeLogin struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"omitempty,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

func (r *EmployeeLogin) Normalize() {
	r.Email = lower(r.Email)
	r.Username = lower(r.Username)
	r.Password = strings.TrimSpace(r.Password)
}

func (r *EmployeeLogin) Validate() error {
	if r.Email == "" && r.Username == "" {
		return &Error{Message: "Must have either email or username"}
	}
	return checkPasswordComplexity(r.Password)
}

type EmployeeRegister struct {
	FirstName   string  `json:"first_name" binding:"required,min=3,max=200"`
	MiddleName  *string `json:"middle_name" binding:"omitempty,min=3,max=200"`
	LastName    string  `json:"last_name" binding:"required,min=3,max=200"`
	Username    string  `json:"username" binding:"required,min=3,max=200"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8,max=200"`
	HomeAddress string  `json:"home_address" binding:"required,min=10,max=500"`
	Role        string  `json:"role" binding:"required"`
	IsAdmin     *bool   `json:"is_admin"`
}

func (r *EmployeeRegister) Normalize() {
	r.FirstName = lower(r.FirstName)
	r.MiddleName = lowerPtr(r.MiddleName)
	r.LastName = lower(r.LastName)
	r.Username = lower(r.Username)
	r.Email = lower(r.Email)
	r.HomeAddress = lower(r.HomeAddress)
	r.Role = lower(r.Role)
	r.Password = strings.TrimSpace(r.Password)
}

func (r *EmployeeRegister) Validate() error {
	if !validRole(r.Role) {
		return &Error{Fields: []FieldError{{Field: "role", Message: "must be one of: salesperson, manager"}}}
	}
	return checkPasswordComplexity(r.Password)
}

type EmployeeUpdate struct {
	FirstName   *string `json:"first_name" binding:"omitempty,min=3,max=200"`
	MiddleName  *string `json:"middle_name" binding:"omitempty,min=3,max=200"`
	LastName    *string `json:"last_name" binding:"omitempty,min=3,max=200"`
	HomeAddress *string `json:"home_address" binding:"omitempty,min=10,max=500"`
	Role        *string `json:"role"`
	IsAdmin     *bool   `json:"is_admin"`
}

func (r *EmployeeUpdate) Normalize() {
	r.FirstName = lowerPtr(r.FirstName)
	r.MiddleName = lowerPtr(r.MiddleName)
	r.LastName = lowerPtr(r.LastName)
	r.HomeAddress = lowerPtr(r.HomeAddress)
	r.Role = lowerPtr(r.Role)
}

func (r *EmployeeUpdate) Validate() error {
	if r.FirstName == nil && r.MiddleName == nil && r.LastName == nil &&
		r.HomeAddress == nil && r.Role == nil && r.IsAdmin == nil {
		return errEmptyPayload
	}
	if r.Role != nil && !validRole(*r.Role) {
		return &Error{Fields: []FieldError{{Field: "role", Message: "must be one of: salesperson, manager"}}}
	}
	return nil
}

func validRole(role string) bool {
	switch models.EmployeeRole(role) {
	case models.RoleSalesperson, models.RoleManager:
		return true
	}
	return false
}
