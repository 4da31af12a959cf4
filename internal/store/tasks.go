package store

import (
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"gorm.io/gorm"
)

type gormTasks struct {
	db *gorm.DB
}

func (s *gormTasks) ByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (s *gormTasks) List(f TaskFilter) ([]models.Task, error) {
	q := s.db.Preload("Employee").Order("due_date asc")
	if f.EmployeeID != nil {
		q = q.Where("employee_id = ?", *f.EmployeeID)
	}

	var tasks []models.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

func (s *gormTasks) Create(t *models.Task) error {
	return translate(s.db.Create(t).Error)
}

func (s *gormTasks) Save(t *models.Task) error {
	return translate(s.db.Save(t).Error)
}

func (s *gormTasks) Delete(t *models.Task) error {
	return translate(s.db.Delete(t).Error)
}
