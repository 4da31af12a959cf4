package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"github.com/staffdesk/staffdesk-api/internal/policy"
	"github.com/staffdesk/staffdesk-api/internal/store"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidStatus      = errors.New("status must be one of TODO, IN_PROGRESS, DONE")
	ErrInvalidDueDate     = errors.New("dueDate must be a valid date")
	ErrInvalidEmployeeRef = errors.New("employeeId must be a valid id")
)

type TaskService struct {
	tasks store.Tasks
}

func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{tasks: st.Tasks}
}

// List returns the tasks visible to the identity, due date ascending, each
// with its assigned employee joined. An EMPLOYEE with no linked record gets
// an empty list, never an error.
func (s *TaskService) List(ident *identity.Identity) ([]models.Task, error) {
	filter, visible := policy.TaskScope(ident)
	if !visible {
		return []models.Task{}, nil
	}
	return s.tasks.List(filter)
}

func (s *TaskService) Create(ident *identity.Identity, req *dto.CreateTaskRequest) (*models.Task, error) {
	if !policy.CanCreateTask(ident) {
		return nil, ErrForbidden
	}

	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	// Missing status is a validation failure, not a silent default.
	status := models.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		id, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return nil, ErrInvalidEmployeeRef
		}
		employeeID = &id
	}

	task := models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     due,
		EmployeeID:  employeeID,
	}

	if err := s.tasks.Create(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial patch. An owning employee has full edit rights,
// assignment and due date included. An empty employeeId leaves the
// assignment unchanged; unassigning is done by editing the employee instead.
func (s *TaskService) Update(ident *identity.Identity, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.tasks.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateTask(ident, task) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
		task.DueDate = due
	}
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		empID, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return nil, ErrInvalidEmployeeRef
		}
		task.EmployeeID = &empID
	}

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ident *identity.Identity, id uuid.UUID) error {
	if !policy.CanDeleteTask(ident) {
		return ErrForbidden
	}

	task, err := s.tasks.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	if err != nil {
		return err
	}

	return s.tasks.Delete(task)
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
