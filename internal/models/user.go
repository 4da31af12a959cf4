package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole is the authentication role of a User. It is unrelated to
// Employee.JobTitle, which is free text.
type AccountRole string

const (
	RoleAdmin    AccountRole = "ADMIN"
	RoleEmployee AccountRole = "EMPLOYEE"
)

func (r AccountRole) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is an authentication identity. EmployeeID is the persisted link to
// the Employee record sharing this user's email; it is refreshed from the
// email match on every resolve, so a stale value never outlives a request.
type User struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Email       string      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string      `gorm:"not null" json:"-"`
	AccountRole AccountRole `gorm:"column:role;size:20;not null;default:'EMPLOYEE'" json:"role"`
	Phone       string      `gorm:"size:50" json:"phone"`
	Department  string      `gorm:"size:100" json:"department"`
	Bio         string      `gorm:"type:text" json:"bio"`
	EmployeeID  *uuid.UUID  `gorm:"type:uuid;index" json:"employeeId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
