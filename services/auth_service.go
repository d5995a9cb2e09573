package services

import (
	"errors"
	"os"
	"time"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login authenticates a user and returns a signed token
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	userRepo := repositories.NewUserRepository()

	user, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user not registered")
		}
		return nil, errs.Server("failed to look up user", err)
	}

	if !user.Active {
		return nil, errs.Authorization("user is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errs.Authorization("invalid email or password")
	}

	token, expiresAt, err := GenerateToken(user.UUID, user.AuthUUID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// GenerateToken generates a new JWT token carrying the user and role references
func GenerateToken(userUUID, authUUID string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errs.Server("JWT_SECRET not set in environment", nil)
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UUID:     userUUID,
		AuthUUID: authUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, errs.Server("failed to sign token", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns its claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errs.Server("JWT_SECRET not set in environment", nil)
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errs.Authorization("invalid authorization token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errs.Authorization("invalid token claims")
	}

	return claims, nil
}

// ResolveCapabilities maps a role reference to its capability set.
// An unresolved reference is reported as not found; callers decide whether
// that means "no permission" or a surfaced error.
func ResolveCapabilities(authUUID string) (models.Capabilities, error) {
	auth, err := repositories.NewAuthRepository().FindByUUID(authUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Capabilities{}, errs.NotFound("authorization not found")
		}
		return models.Capabilities{}, errs.Server("failed to resolve authorization", err)
	}
	return auth.Capabilities(), nil
}

// AuthService handles business logic for roles
type AuthService struct {
	authRepo *repositories.AuthRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{authRepo: repositories.NewAuthRepository()}
}

// ListRoles retrieves roles matching the filter
func (s *AuthService) ListRoles(filter repositories.AuthFilter) ([]models.Auth, error) {
	auths, err := s.authRepo.Find(filter)
	if err != nil {
		return nil, errs.Server("failed to list roles", err)
	}
	return auths, nil
}

// CreateRole registers a new role; requires the admin capability
func (s *AuthService) CreateRole(req dto.CreateAuthRequest, caps models.Capabilities) (models.Auth, error) {
	if !caps.Admin {
		return models.Auth{}, errs.Authorization("user lacks permission to create roles")
	}

	exists, err := s.authRepo.ExistsByType(req.Type)
	if err != nil {
		return models.Auth{}, errs.Server("failed to check role name", err)
	}
	if exists {
		return models.Auth{}, errs.Conflict("role name already registered")
	}

	auth := models.Auth{
		Type:      req.Type,
		Admin:     req.Admin,
		Project:   req.Project,
		Personal:  req.Personal,
		Financial: req.Financial,
	}

	auth, err = s.authRepo.Create(auth)
	if err != nil {
		return models.Auth{}, errs.Server("failed to create role", err)
	}
	return auth, nil
}

// UpdateRole modifies a role; requires admin, and the owner role is immutable
func (s *AuthService) UpdateRole(req dto.UpdateAuthRequest, caps models.Capabilities) error {
	auth, err := s.authRepo.FindByUUID(req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("role not found")
		}
		return errs.Server("failed to look up role", err)
	}

	if !roleMutable(auth, caps) {
		return errs.Authorization("user lacks permission to edit this role")
	}

	auth.Type = req.Type
	auth.Admin = req.Admin
	auth.Project = req.Project
	auth.Personal = req.Personal
	auth.Financial = req.Financial

	if err := s.authRepo.Update(auth); err != nil {
		return errs.Server("failed to update role", err)
	}
	return nil
}

// DeleteRole removes a role; requires admin, blocks the owner role and roles in use
func (s *AuthService) DeleteRole(uuid string, caps models.Capabilities) error {
	auth, err := s.authRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("role not found")
		}
		return errs.Server("failed to look up role", err)
	}

	if !roleMutable(auth, caps) {
		return errs.Authorization("user lacks permission to delete this role")
	}

	users, err := s.authRepo.CountUsers(uuid)
	if err != nil {
		return errs.Server("failed to count role users", err)
	}
	if users > 0 {
		return errs.Conflict("role is still assigned to users")
	}

	if err := s.authRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete role", err)
	}
	return nil
}

// roleMutable reports whether the caller may edit or delete the role.
// Only admins mutate roles, and the owner role is immutable for everyone.
func roleMutable(auth models.Auth, caps models.Capabilities) bool {
	return caps.Admin && !auth.IsOwner()
}

// CheckPermissions verifies that the capability set covers every requested flag
func CheckPermissions(caps models.Capabilities, requested map[string]bool) error {
	checks := []struct {
		key   string
		held  bool
		label string
	}{
		{"admin", caps.Admin, "system settings"},
		{"project", caps.Project, "project data"},
		{"personal", caps.Personal, "personal data"},
		{"financial", caps.Financial, "financial data"},
	}

	for _, check := range checks {
		if requested[check.key] && !check.held {
			return errs.Authorization("user lacks permission over " + check.label)
		}
	}
	return nil
}
