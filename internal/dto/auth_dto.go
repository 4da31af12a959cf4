package dto

import (
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthUser carries the resolved employeeId so the client can make local
// scoping decisions without re-querying.
type AuthUser struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Role       models.AccountRole `json:"role"`
	EmployeeID *uuid.UUID         `json:"employeeId"`
}

type AuthResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	User         AuthUser `json:"user"`
}

type ProfileResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Role       models.AccountRole `json:"role"`
	Phone      string             `json:"phone"`
	Department string             `json:"department"`
	Bio        string             `json:"bio"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Bio        *string `json:"bio"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
