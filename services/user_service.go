package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo *repositories.UserRepository
	authRepo *repositories.AuthRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
		authRepo: repositories.NewAuthRepository(),
	}
}

// ListUsers retrieves users matching the filter, projected by the viewer's
// capability set
func (s *UserService) ListUsers(filter repositories.UserFilter, caps models.Capabilities, viewerUUID string) ([]dto.UserView, error) {
	users, err := s.userRepo.Find(filter)
	if err != nil {
		return nil, errs.Server("failed to retrieve users", err)
	}

	views := make([]dto.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, BuildUserView(user, caps, viewerUUID))
	}
	return views, nil
}

// GetUser retrieves a single user, projected by the viewer's capability set
func (s *UserService) GetUser(uuid string, caps models.Capabilities, viewerUUID string) (dto.UserView, error) {
	user, err := s.findUser(uuid)
	if err != nil {
		return dto.UserView{}, err
	}
	return BuildUserView(user, caps, viewerUUID), nil
}

// CreateUser registers a new user; requires the personal capability
func (s *UserService) CreateUser(req dto.CreateUserRequest, caps models.Capabilities) (models.User, error) {
	if !caps.Personal {
		return models.User{}, errs.Authorization("user lacks permission to create users")
	}

	if req.PasswordNew != req.PasswordCheck {
		return models.User{}, errs.Validation("password confirmation does not match")
	}
	if !utils.ValidateCPF(req.CPF) {
		return models.User{}, errs.Validation("invalid CPF")
	}

	rate, err := s.validateRole(req.AuthUUID, req.HourlyRate)
	if err != nil {
		return models.User{}, err
	}

	if exists, err := s.userRepo.ExistsByCPF(req.CPF); err != nil {
		return models.User{}, errs.Server("failed to check CPF", err)
	} else if exists {
		return models.User{}, errs.Conflict("CPF already registered")
	}
	if exists, err := s.userRepo.ExistsByEmail(req.Email); err != nil {
		return models.User{}, errs.Server("failed to check email", err)
	} else if exists {
		return models.User{}, errs.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNew), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errs.Server("failed to hash password", err)
	}

	user := models.User{
		CPF:        req.CPF,
		Name:       req.Name,
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hash),
		Phone:      req.Phone,
		Active:     req.Active,
		HourlyRate: rate,
		AuthUUID:   req.AuthUUID,
	}

	user, err = s.userRepo.Create(user)
	if err != nil {
		return models.User{}, errs.Server("failed to create user", err)
	}
	return user, nil
}

// UpdateUser modifies an existing user. The personal capability covers any
// record; everyone can edit their own. Role and activation changes stay
// admin-only.
func (s *UserService) UpdateUser(req dto.UpdateUserRequest, caps models.Capabilities, viewerUUID string) error {
	user, err := s.findUser(req.UUID)
	if err != nil {
		return err
	}

	if !caps.Personal && user.UUID != viewerUUID {
		return errs.Authorization("user lacks permission to edit other users")
	}
	if !caps.Admin && (req.AuthUUID != user.AuthUUID || req.Active != user.Active) {
		return errs.Authorization("user lacks permission to change role or activation")
	}

	rate, err := s.validateRole(req.AuthUUID, req.HourlyRate)
	if err != nil {
		return err
	}

	if req.Email != user.Email {
		if exists, err := s.userRepo.ExistsByEmail(req.Email); err != nil {
			return errs.Server("failed to check email", err)
		} else if exists {
			return errs.Conflict("email already registered")
		}
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Email = req.Email
	user.Phone = req.Phone
	user.Active = req.Active
	user.HourlyRate = rate
	user.AuthUUID = req.AuthUUID

	if err := s.userRepo.Update(user); err != nil {
		return errs.Server("failed to update user", err)
	}
	return nil
}

// UpdatePassword changes a user's password. Non-admins must present the
// current password and can only change their own.
func (s *UserService) UpdatePassword(req dto.UpdatePasswordRequest, caps models.Capabilities, viewerUUID string) error {
	user, err := s.findUser(req.UUID)
	if err != nil {
		return err
	}

	if !caps.Admin && user.UUID != viewerUUID {
		return errs.Authorization("user lacks permission to change other passwords")
	}
	if req.PasswordNew != req.PasswordCheck {
		return errs.Validation("password confirmation does not match")
	}
	if !caps.Admin {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.PasswordOld)); err != nil {
			return errs.Authorization("current password is incorrect")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNew), bcrypt.DefaultCost)
	if err != nil {
		return errs.Server("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(user.UUID, string(hash)); err != nil {
		return errs.Server("failed to update password", err)
	}
	return nil
}

// DeleteUser removes a user; requires the personal capability
func (s *UserService) DeleteUser(uuid string, caps models.Capabilities) error {
	if !caps.Personal {
		return errs.Authorization("user lacks permission to delete users")
	}

	user, err := s.findUser(uuid)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(user.UUID); err != nil {
		return errs.Server("failed to delete user", err)
	}
	return nil
}

// findUser looks up a user, translating a missing row into NotFound
func (s *UserService) findUser(uuid string) (models.User, error) {
	user, err := s.userRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, errs.NotFound("user not found")
		}
		return models.User{}, errs.Server("failed to look up user", err)
	}
	return user, nil
}

// validateRole resolves the target role and enforces that project-capable
// roles carry an hourly rate, since their holders appear in task valuations
func (s *UserService) validateRole(authUUID string, hourlyRate *string) (*decimal.Decimal, error) {
	auth, err := s.authRepo.FindByUUID(authUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("role not found")
		}
		return nil, errs.Server("failed to look up role", err)
	}

	if hourlyRate == nil || *hourlyRate == "" {
		if auth.Project {
			return nil, errs.Validation("hourly rate is required for project roles")
		}
		return nil, nil
	}

	rate, err := utils.ParseBRL(*hourlyRate)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
