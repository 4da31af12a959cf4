package store

import (
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"gorm.io/gorm"
)

type gormUsers struct {
	db *gorm.DB
}

func (s *gormUsers) ByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormUsers) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormUsers) Create(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *gormUsers) Save(u *models.User) error {
	return translate(s.db.Save(u).Error)
}
