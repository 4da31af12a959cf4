// Package policy holds the stateless access decisions for employees and
// tasks. Employee records are readable by everyone (directory semantics)
// but mutable only by admins; task visibility is scoped at the listing
// level so update/delete errors cannot leak row existence.
package policy

import (
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"github.com/staffdesk/staffdesk-api/internal/store"
)

func CanManageEmployees(id *identity.Identity) bool {
	return id.IsAdmin()
}

func CanCreateTask(id *identity.Identity) bool {
	return id.IsAdmin()
}

func CanDeleteTask(id *identity.Identity) bool {
	return id.IsAdmin()
}

// CanUpdateTask allows admins to edit any task and an employee to edit a
// task assigned to their own Employee record. An EMPLOYEE user without a
// linked record has no task to match and is always denied.
func CanUpdateTask(id *identity.Identity, task *models.Task) bool {
	if id.IsAdmin() {
		return true
	}
	if !id.Linked() || task.EmployeeID == nil {
		return false
	}
	return *task.EmployeeID == id.Employee.ID
}

// TaskScope returns the listing filter for the identity. The second return
// is false when no rows are visible at all (unlinked EMPLOYEE), in which
// case callers return an empty list rather than querying.
func TaskScope(id *identity.Identity) (store.TaskFilter, bool) {
	if id.IsAdmin() {
		return store.TaskFilter{}, true
	}
	if !id.Linked() {
		return store.TaskFilter{}, false
	}
	empID := id.Employee.ID
	return store.TaskFilter{EmployeeID: &empID}, true
}
