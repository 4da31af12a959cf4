package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"github.com/staffdesk/staffdesk-api/internal/policy"
	"github.com/staffdesk/staffdesk-api/internal/store"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInvalid    = errors.New("name and email are required")
	ErrEmployeeEmailTaken = errors.New("an employee with this email already exists")
)

type EmployeeService struct {
	employees store.Employees
}

func NewEmployeeService(st *store.Store) *EmployeeService {
	return &EmployeeService{employees: st.Employees}
}

// List is deliberately unscoped: every authenticated identity sees the full
// directory with tasks loaded. Only mutation is admin-gated.
func (s *EmployeeService) List() ([]models.Employee, error) {
	return s.employees.List()
}

func (s *EmployeeService) GetByID(id uuid.UUID) (*models.Employee, error) {
	emp, err := s.employees.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEmployeeNotFound
	}
	return emp, err
}

func (s *EmployeeService) Create(ident *identity.Identity, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	if !policy.CanManageEmployees(ident) {
		return nil, ErrForbidden
	}

	if req.Name == "" || req.Email == "" {
		return nil, ErrEmployeeInvalid
	}

	emp := models.Employee{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		JobTitle:   req.Role,
	}

	if err := s.employees.Create(&emp); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmployeeEmailTaken
		}
		return nil, err
	}
	return &emp, nil
}

// Update applies a partial patch. Changing the email silently breaks or
// makes the link to a User; the resolver re-links on the next request.
func (s *EmployeeService) Update(ident *identity.Identity, id uuid.UUID, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	if !policy.CanManageEmployees(ident) {
		return nil, ErrForbidden
	}

	emp, err := s.employees.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, ErrEmployeeInvalid
		}
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Role != nil {
		emp.JobTitle = *req.Role
	}

	if err := s.employees.Save(emp); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmployeeEmailTaken
		}
		return nil, err
	}
	return emp, nil
}

// Delete removes the employee; their tasks survive with employee_id nulled
// by the foreign key constraint.
func (s *EmployeeService) Delete(ident *identity.Identity, id uuid.UUID) error {
	if !policy.CanManageEmployees(ident) {
		return ErrForbidden
	}

	emp, err := s.employees.ByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEmployeeNotFound
	}
	if err != nil {
		return err
	}

	return s.employees.Delete(emp)
}
