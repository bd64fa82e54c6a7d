package service

import (
	"context"
	"time"

	"github.com/circuitaura/storefront/internal/cache"
	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"
)

// UserAdminService manages accounts from the console. Role and status
// changes revoke the target's live sessions so they take effect on the
// next request.
type UserAdminService struct {
	userRepo repository.UserRepository
}

// NewUserAdminService creates the account admin service.
func NewUserAdminService(userRepo repository.UserRepository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// List returns accounts for the console.
func (s *UserAdminService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	switch filter.Role {
	case "", constants.RoleUser, constants.RoleAdmin, constants.RoleSupport:
	default:
		return nil, 0, ErrRoleInvalid
	}
	switch filter.Status {
	case "", constants.UserStatusActive, constants.UserStatusDisabled:
	default:
		return nil, 0, ErrUserStatusInvalid
	}
	return s.userRepo.List(filter)
}

// GetByID returns one account.
func (s *UserAdminService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// SetStatus enables or disables an account. Admins cannot change their
// own status; disabling revokes the target's sessions.
func (s *UserAdminService) SetStatus(actorID, userID uint, status string) (*models.User, error) {
	if actorID == userID {
		return nil, ErrSelfChangeNotAllowed
	}
	switch status {
	case constants.UserStatusActive, constants.UserStatusDisabled:
	default:
		return nil, ErrUserStatusInvalid
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Status == status {
		return user, nil
	}

	user.Status = status
	s.revokeSessions(user)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	_ = cache.DelUserAuthState(context.Background(), user.ID)
	return user, nil
}

// SetRole moves an account between the user, support and admin roles.
// Admins cannot change their own role; the change revokes the target's
// sessions.
func (s *UserAdminService) SetRole(actorID, userID uint, role string) (*models.User, error) {
	if actorID == userID {
		return nil, ErrSelfChangeNotAllowed
	}
	switch role {
	case constants.RoleUser, constants.RoleAdmin, constants.RoleSupport:
	default:
		return nil, ErrRoleInvalid
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}

	user.Role = role
	s.revokeSessions(user)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	_ = cache.DelUserAuthState(context.Background(), user.ID)
	return user, nil
}

func (s *UserAdminService) revokeSessions(user *models.User) {
	now := time.Now()
	user.TokenVersion++
	user.TokenInvalidBefore = &now
}
