package store

import (
	"github.com/staffdesk/staffdesk-api/internal/models"
	"gorm.io/gorm"
)

type gormRefreshTokens struct {
	db *gorm.DB
}

func (s *gormRefreshTokens) ByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", hash).First(&token).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (s *gormRefreshTokens) Create(t *models.RefreshToken) error {
	return translate(s.db.Create(t).Error)
}

func (s *gormRefreshTokens) Revoke(t *models.RefreshToken) error {
	return translate(s.db.Model(t).Update("revoked", true).Error)
}

func (s *gormRefreshTokens) RevokeByHash(hash string) error {
	return translate(s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error)
}
