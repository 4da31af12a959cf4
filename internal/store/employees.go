package store

import (
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"gorm.io/gorm"
)

type gormEmployees struct {
	db *gorm.DB
}

func (s *gormEmployees) ByID(id uuid.UUID) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.Preload("Tasks").First(&emp, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &emp, nil
}

func (s *gormEmployees) ByEmail(email string) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.Where("email = ?", email).First(&emp).Error; err != nil {
		return nil, translate(err)
	}
	return &emp, nil
}

func (s *gormEmployees) List() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Preload("Tasks").Order("created_at asc").Find(&employees).Error; err != nil {
		return nil, translate(err)
	}
	return employees, nil
}

func (s *gormEmployees) Create(e *models.Employee) error {
	return translate(s.db.Create(e).Error)
}

func (s *gormEmployees) Save(e *models.Employee) error {
	return translate(s.db.Save(e).Error)
}

func (s *gormEmployees) Delete(e *models.Employee) error {
	return translate(s.db.Delete(e).Error)
}
