package identity

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"github.com/staffdesk/staffdesk-api/internal/store"
)

// ErrUnauthenticated covers every resolution failure, including a token that
// references a deleted user. Callers must not distinguish the cases, to
// avoid leaking which user ids exist.
var ErrUnauthenticated = errors.New("authentication required")

// Resolver turns a validated user id into an Identity. It runs on every
// request; nothing is cached across requests.
type Resolver struct {
	users     store.Users
	employees store.Employees
}

func NewResolver(users store.Users, employees store.Employees) *Resolver {
	return &Resolver{users: users, employees: employees}
}

// Resolve loads the user and, for EMPLOYEE accounts, the Employee record
// whose email matches. The email match is authoritative; user.EmployeeID is
// only a persisted mirror of it, refreshed here so that employees created
// after registration still attach and email edits re-link or unlink.
func (r *Resolver) Resolve(userID uuid.UUID) (*Identity, error) {
	user, err := r.users.ByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if user.AccountRole != models.RoleEmployee {
		return &Identity{User: user}, nil
	}

	emp, err := r.employees.ByEmail(user.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	r.syncLink(user, emp)
	return &Identity{User: user, Employee: emp}, nil
}

func (r *Resolver) syncLink(user *models.User, emp *models.Employee) {
	switch {
	case emp == nil && user.EmployeeID == nil:
		return
	case emp != nil && user.EmployeeID != nil && *user.EmployeeID == emp.ID:
		return
	}

	if emp == nil {
		user.EmployeeID = nil
	} else {
		id := emp.ID
		user.EmployeeID = &id
	}

	// Best effort; the in-memory identity is already correct for this request.
	if err := r.users.Save(user); err != nil {
		slog.Warn("failed to persist employee link", "user_id", user.ID, "error", err)
	}
}
