// Package store is the persistence capability behind the services. Each
// entity gets a small interface so services can be exercised against
// in-memory fakes; the GORM implementations live alongside.
package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("store: record not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// TaskFilter narrows a task listing. A nil EmployeeID means no filter.
type TaskFilter struct {
	EmployeeID *uuid.UUID
}

type Users interface {
	ByID(id uuid.UUID) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	Create(u *models.User) error
	Save(u *models.User) error
}

type Employees interface {
	// ByID and List return employees with their tasks eagerly loaded.
	ByID(id uuid.UUID) (*models.Employee, error)
	ByEmail(email string) (*models.Employee, error)
	List() ([]models.Employee, error)
	Create(e *models.Employee) error
	Save(e *models.Employee) error
	Delete(e *models.Employee) error
}

type Tasks interface {
	ByID(id uuid.UUID) (*models.Task, error)
	// List returns tasks matching the filter with the assigned employee
	// joined, ordered by due date ascending.
	List(f TaskFilter) ([]models.Task, error)
	Create(t *models.Task) error
	Save(t *models.Task) error
	Delete(t *models.Task) error
}

type RefreshTokens interface {
	ByHash(hash string) (*models.RefreshToken, error)
	Create(t *models.RefreshToken) error
	Revoke(t *models.RefreshToken) error
	RevokeByHash(hash string) error
}

// Store bundles the per-entity stores over one database handle.
type Store struct {
	Users         Users
	Employees     Employees
	Tasks         Tasks
	RefreshTokens RefreshTokens
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:         &gormUsers{db: db},
		Employees:     &gormEmployees{db: db},
		Tasks:         &gormTasks{db: db},
		RefreshTokens: &gormRefreshTokens{db: db},
	}
}

// translate maps GORM errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
