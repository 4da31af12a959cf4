package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-api/internal/config"
	"github.com/staffdesk/staffdesk-api/internal/dto"
	"github.com/staffdesk/staffdesk-api/internal/identity"
	"github.com/staffdesk/staffdesk-api/internal/models"
	"github.com/staffdesk/staffdesk-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrInvalidRole         = errors.New("role must be ADMIN or EMPLOYEE")
	ErrRegistrationInvalid = errors.New("name and email are required and password must be at least 8 characters")
)

type AuthService struct {
	users     store.Users
	employees store.Employees
	refresh   store.RefreshTokens
	resolver  *identity.Resolver
	cfg       *config.Config
}

func NewAuthService(st *store.Store, resolver *identity.Resolver, cfg *config.Config) *AuthService {
	return &AuthService{
		users:     st.Users,
		employees: st.Employees,
		refresh:   st.RefreshTokens,
		resolver:  resolver,
		cfg:       cfg,
	}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, ErrRegistrationInvalid
	}

	role := models.AccountRole(req.Role)
	if req.Role == "" {
		role = models.RoleEmployee
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.users.ByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hash),
		AccountRole: role,
	}

	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Populate the employee link immediately; the resolver keeps it fresh
	// on every later request.
	ident, err := s.resolver.Resolve(user.ID)
	if err != nil {
		return nil, err
	}

	return s.authResponse(ident)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.ByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ident, err := s.resolver.Resolve(user.ID)
	if err != nil {
		return nil, err
	}

	return s.authResponse(ident)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	stored, err := s.refresh.ByHash(hashToken(req.RefreshToken))
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refresh.Revoke(stored)
		return nil, ErrInvalidRefreshToken
	}

	if err := s.refresh.Revoke(stored); err != nil {
		return nil, err
	}

	ident, err := s.resolver.Resolve(stored.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.authResponse(ident)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	return s.refresh.RevokeByHash(hashToken(req.RefreshToken))
}

func (s *AuthService) Profile(ident *identity.Identity) *dto.ProfileResponse {
	return profileResponse(ident.User)
}

// UpdateProfile updates the caller's User row and, for a linked employee,
// mirrors name/phone/department onto the Employee record. The mirror is best
// effort and not atomic with the user update; a failure is logged and the
// two rows may diverge until the next profile update.
func (s *AuthService) UpdateProfile(ident *identity.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user := ident.User

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}

	if user.AccountRole == models.RoleEmployee && ident.Linked() {
		emp := ident.Employee
		if req.Name != nil && *req.Name != "" {
			emp.Name = *req.Name
		}
		if req.Phone != nil && *req.Phone != "" {
			emp.Phone = *req.Phone
		}
		if req.Department != nil && *req.Department != "" {
			emp.Department = *req.Department
		}
		if err := s.employees.Save(emp); err != nil {
			slog.Warn("profile mirror to employee failed", "user_id", user.ID, "employee_id", emp.ID, "error", err)
		}
	}

	return profileResponse(user), nil
}

func (s *AuthService) authResponse(ident *identity.Identity) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(ident.User)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ident.User)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: dto.AuthUser{
			ID:         ident.User.ID,
			Name:       ident.User.Name,
			Email:      ident.User.Email,
			Role:       ident.User.AccountRole,
			EmployeeID: ident.User.EmployeeID,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.AccountRole),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.refresh.Create(&record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func profileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.AccountRole,
		Phone:      user.Phone,
		Department: user.Department,
		Bio:        user.Bio,
	}
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
