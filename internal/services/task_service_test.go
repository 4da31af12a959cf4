package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/models"
)

func TestTaskList_UnlinkedEmployeeGetsEmptyList(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "nobody@example.com")
	env.addTask("orphaned", "2026-01-01", nil)

	tasks, err := svc.List(employeeIdentity(user, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(tasks))
	}
}

func TestTaskList_LinkedEmployeeSeesOnlyOwnTasks(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "jane@example.com")
	mine := env.addEmployee("jane@example.com")
	other := env.addEmployee("bob@example.com")

	env.addTask("mine-late", "2026-03-01", &mine.ID)
	env.addTask("theirs", "2026-01-15", &other.ID)
	env.addTask("mine-early", "2026-01-01", &mine.ID)
	env.addTask("unassigned", "2026-02-01", nil)

	tasks, err := svc.List(employeeIdentity(user, mine))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.EmployeeID == nil || *task.EmployeeID != mine.ID {
			t.Errorf("task %q not assigned to caller", task.Title)
		}
	}
	if tasks[0].Title != "mine-early" || tasks[1].Title != "mine-late" {
		t.Errorf("tasks not ordered by due date: %q, %q", tasks[0].Title, tasks[1].Title)
	}
}

func TestTaskList_AdminSeesEverything(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	admin := env.addUser(models.RoleAdmin, "admin@example.com")
	emp := env.addEmployee("jane@example.com")

	env.addTask("assigned", "2026-02-01", &emp.ID)
	env.addTask("unassigned", "2026-01-01", nil)

	tasks, err := svc.List(adminIdentity(admin))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected all tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "unassigned" {
		t.Errorf("expected due-date ordering, first task was %q", tasks[0].Title)
	}
}

func TestTaskCreate_EmployeeForbiddenBeforeAnyWrite(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "jane@example.com")
	emp := env.addEmployee("jane@example.com")

	_, err := svc.Create(employeeIdentity(user, emp), &dto.CreateTaskRequest{
		Title: "sneaky", Status: "TODO", DueDate: "2026-01-01",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if env.tasks.writes != 0 {
		t.Errorf("expected no writes, got %d", env.tasks.writes)
	}
}

func TestTaskCreate_Validation(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)
	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))

	tests := []struct {
		name string
		req  dto.CreateTaskRequest
		want error
	}{
		{"bad date", dto.CreateTaskRequest{Title: "t", Status: "TODO", DueDate: "bad-date"}, ErrInvalidDueDate},
		{"missing status", dto.CreateTaskRequest{Title: "t", DueDate: "2026-01-01"}, ErrInvalidStatus},
		{"unknown status", dto.CreateTaskRequest{Title: "t", Status: "BLOCKED", DueDate: "2026-01-01"}, ErrInvalidStatus},
		{"missing title", dto.CreateTaskRequest{Status: "TODO", DueDate: "2026-01-01"}, ErrTitleRequired},
		{"bad employee id", dto.CreateTaskRequest{Title: "t", Status: "TODO", DueDate: "2026-01-01", EmployeeID: "not-a-uuid"}, ErrInvalidEmployeeRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(admin, &tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if env.tasks.writes != 0 {
		t.Errorf("validation failures must not persist rows, got %d writes", env.tasks.writes)
	}
}

func TestTaskCreate_EmptyEmployeeIDMeansUnassigned(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)
	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))

	task, err := svc.Create(admin, &dto.CreateTaskRequest{
		Title: "floating", Status: "TODO", DueDate: "2026-05-01", EmployeeID: "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.EmployeeID != nil {
		t.Errorf("expected nil employeeId, got %v", task.EmployeeID)
	}
}

func TestTaskCreate_AcceptsRFC3339DueDate(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)
	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))

	task, err := svc.Create(admin, &dto.CreateTaskRequest{
		Title: "timestamped", Status: "IN_PROGRESS", DueDate: "2026-05-01T09:30:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.DueDate.Year() != 2026 || task.DueDate.Hour() != 9 {
		t.Errorf("due date parsed wrong: %v", task.DueDate)
	}
}

func TestTaskUpdate_NonOwnerEmployeeForbidden(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "jane@example.com")
	mine := env.addEmployee("jane@example.com")
	other := env.addEmployee("bob@example.com")
	task := env.addTask("theirs", "2026-01-01", &other.ID)

	status := "DONE"
	_, err := svc.Update(employeeIdentity(user, mine), task.ID, &dto.UpdateTaskRequest{Status: &status})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskUpdate_UnlinkedEmployeeForbidden(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "ghost@example.com")
	task := env.addTask("unassigned", "2026-01-01", nil)

	status := "DONE"
	_, err := svc.Update(employeeIdentity(user, nil), task.ID, &dto.UpdateTaskRequest{Status: &status})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskUpdate_OwnerHasFullEditRights(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "jane@example.com")
	mine := env.addEmployee("jane@example.com")
	other := env.addEmployee("bob@example.com")
	task := env.addTask("mine", "2026-01-01", &mine.ID)

	title := "renamed"
	status := "DONE"
	due := "2026-06-01"
	reassign := other.ID.String()
	updated, err := svc.Update(employeeIdentity(user, mine), task.ID, &dto.UpdateTaskRequest{
		Title:      &title,
		Status:     &status,
		DueDate:    &due,
		EmployeeID: &reassign,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "renamed" || updated.Status != models.StatusDone {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.EmployeeID == nil || *updated.EmployeeID != other.ID {
		t.Errorf("owner reassignment should be allowed, got %v", updated.EmployeeID)
	}
}

func TestTaskUpdate_EmptyEmployeeIDLeavesAssignmentUnchanged(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))
	emp := env.addEmployee("jane@example.com")
	task := env.addTask("assigned", "2026-01-01", &emp.ID)

	empty := ""
	updated, err := svc.Update(admin, task.ID, &dto.UpdateTaskRequest{EmployeeID: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EmployeeID == nil || *updated.EmployeeID != emp.ID {
		t.Errorf("empty employeeId on update must leave assignment unchanged, got %v", updated.EmployeeID)
	}
}

func TestTaskUpdate_PartialPatchOnlyTouchesSuppliedFields(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))
	emp := env.addEmployee("jane@example.com")
	task := env.addTask("original", "2026-01-01", &emp.ID)

	status := "IN_PROGRESS"
	updated, err := svc.Update(admin, task.ID, &dto.UpdateTaskRequest{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "original" {
		t.Errorf("title changed unexpectedly: %q", updated.Title)
	}
	if !updated.DueDate.Equal(task.DueDate) {
		t.Errorf("due date changed unexpectedly: %v", updated.DueDate)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("status not applied: %v", updated.Status)
	}
}

func TestTaskUpdate_MissingTaskIsNotFound(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)
	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))

	status := "DONE"
	_, err := svc.Update(admin, uuid.New(), &dto.UpdateTaskRequest{Status: &status})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskDelete_AdminOnly(t *testing.T) {
	env := newTestEnv()
	svc := NewTaskService(env.store)

	user := env.addUser(models.RoleEmployee, "jane@example.com")
	emp := env.addEmployee("jane@example.com")
	task := env.addTask("mine", "2026-01-01", &emp.ID)

	if err := svc.Delete(employeeIdentity(user, emp), task.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden even for the task owner, got %v", err)
	}

	admin := adminIdentity(env.addUser(models.RoleAdmin, "admin@example.com"))
	if err := svc.Delete(admin, task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(admin, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}
