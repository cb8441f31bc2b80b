// Package service holds the domain services. They orchestrate the
// repositories, enforce the cross-entity invariants, and translate
// absent repository results into the application error taxonomy.
//
// The multi-step checks in this package (email uniqueness, ownership,
// capacity) are read-then-write sequences with no locking around them.
// Two concurrent requests can both pass a check before either writes;
// that race is a known, accepted limitation of the system. The only
// atomic multi-record operation is the establishment-plus-rules create.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/repository"
	apperrors "github.com/oKauaDev/establo/pkg/errors"
)

// UserService manages user lifecycle.
type UserService struct {
	users  *repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a user service.
func NewUserService(users *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create stores a new user. The email is lower-cased before the
// uniqueness lookup and before storage. The lookup and the write are not
// atomic: two concurrent creates with the same email can both succeed.
func (s *UserService) Create(ctx context.Context, name, email string, userType domain.UserType) (*domain.User, error) {
	email = strings.ToLower(email)

	if existing := s.users.GetByEmail(ctx, email); existing != nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	}

	user := s.users.Create(ctx, name, email, userType)
	if user == nil {
		return nil, apperrors.NewInternalError("failed to create user")
	}

	s.logger.Info("user created", zap.String("id", user.ID))
	return user, nil
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user := s.users.GetByID(ctx, id)
	if user == nil {
		return nil, apperrors.NewNotFoundError("user")
	}
	return user, nil
}

// Edit merges the supplied fields into the user. An empty field set is a
// no-op returning the unchanged record.
func (s *UserService) Edit(ctx context.Context, id string, fields map[string]interface{}) (*domain.User, error) {
	if existing := s.users.GetByID(ctx, id); existing == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	user := s.users.Edit(ctx, id, fields)
	if user == nil {
		return nil, apperrors.NewInternalError("failed to edit user")
	}
	return user, nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if existing := s.users.GetByID(ctx, id); existing == nil {
		return apperrors.NewNotFoundError("user")
	}

	if !s.users.Delete(ctx, id) {
		return apperrors.NewInternalError("failed to delete user")
	}

	s.logger.Info("user deleted", zap.String("id", id))
	return nil
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, ok := s.users.All(ctx)
	if !ok {
		return nil, apperrors.NewInternalError("failed to list users")
	}
	return users, nil
}
