package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is an organizational record, independent from User. A User and an
// Employee are connected only when their emails match; either side may exist
// without the other. JobTitle serializes as "role" for compatibility with
// existing clients; it is free text, unrelated to User.AccountRole.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	Department string    `gorm:"size:100" json:"department"`
	JobTitle   string    `gorm:"column:role;size:100" json:"role"`
	Tasks      []Task    `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL" json:"tasks,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
