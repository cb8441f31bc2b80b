package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/repository"
	"github.com/oKauaDev/establo/internal/store"
	apperrors "github.com/oKauaDev/establo/pkg/errors"
)

// EstablishmentService manages establishment lifecycle together with the
// rules row that accompanies every establishment.
type EstablishmentService struct {
	users          *repository.UserRepository
	establishments *repository.EstablishmentRepository
	rules          *repository.EstablishmentRulesRepository
	store          store.Store
	logger         *zap.Logger
}

// NewEstablishmentService creates an establishment service.
func NewEstablishmentService(
	users *repository.UserRepository,
	establishments *repository.EstablishmentRepository,
	rules *repository.EstablishmentRulesRepository,
	s store.Store,
	logger *zap.Logger,
) *EstablishmentService {
	return &EstablishmentService{
		users:          users,
		establishments: establishments,
		rules:          rules,
		store:          s,
		logger:         logger,
	}
}

// Create stores a new establishment after checking that ownerID resolves
// to a user of type owner. The establishment and its default rules row
// are written in one all-or-nothing operation: a failed write leaves no
// partial state. The ownership check itself is not atomic with the
// write; the owner's role is only guaranteed at check time.
func (s *EstablishmentService) Create(ctx context.Context, name, ownerID string, estType domain.EstablishmentType) (*domain.Establishment, error) {
	owner := s.users.GetByID(ctx, ownerID)
	if owner == nil {
		return nil, apperrors.NewNotFoundError("user")
	}
	if owner.Type != domain.UserTypeOwner {
		return nil, apperrors.NewForbiddenError("the user must be of type owner")
	}

	establishmentItem, establishment := s.establishments.NewItem(name, ownerID, estType)
	if establishment == nil {
		return nil, apperrors.NewInternalError("failed to create establishment")
	}

	rulesItem, rules := s.rules.NewItem(
		establishment.ID,
		repository.DefaultPicturesLimit,
		repository.DefaultVideoLimit,
	)
	if rules == nil {
		return nil, apperrors.NewInternalError("failed to create establishment")
	}

	if !s.store.TransactPut(ctx, []store.TableItem{establishmentItem, rulesItem}) {
		return nil, apperrors.NewInternalError("failed to create establishment")
	}

	s.logger.Info("establishment created",
		zap.String("id", establishment.ID),
		zap.String("ownerId", ownerID),
	)
	return establishment, nil
}

// Get returns the establishment with the given id.
func (s *EstablishmentService) Get(ctx context.Context, id string) (*domain.Establishment, error) {
	establishment := s.establishments.GetByID(ctx, id)
	if establishment == nil {
		return nil, apperrors.NewNotFoundError("establishment")
	}
	return establishment, nil
}

// Edit merges the supplied fields into the establishment.
func (s *EstablishmentService) Edit(ctx context.Context, id string, fields map[string]interface{}) (*domain.Establishment, error) {
	if existing := s.establishments.GetByID(ctx, id); existing == nil {
		return nil, apperrors.NewNotFoundError("establishment")
	}

	establishment := s.establishments.Edit(ctx, id, fields)
	if establishment == nil {
		return nil, apperrors.NewInternalError("failed to edit establishment")
	}
	return establishment, nil
}

// Delete removes the establishment and, best-effort, its rules row. A
// failed rules delete is logged but does not block the establishment
// delete; the two removals are not transactional.
func (s *EstablishmentService) Delete(ctx context.Context, id string) error {
	if existing := s.establishments.GetByID(ctx, id); existing == nil {
		return apperrors.NewNotFoundError("establishment")
	}

	if rules := s.rules.GetByEstablishment(ctx, id); rules != nil {
		if !s.rules.Delete(ctx, rules.ID) {
			s.logger.Warn("failed to delete establishment rules",
				zap.String("establishmentId", id),
				zap.String("rulesId", rules.ID),
			)
		}
	}

	if !s.establishments.Delete(ctx, id) {
		return apperrors.NewInternalError("failed to delete establishment")
	}

	s.logger.Info("establishment deleted", zap.String("id", id))
	return nil
}

// List returns every establishment.
func (s *EstablishmentService) List(ctx context.Context) ([]domain.Establishment, error) {
	establishments, ok := s.establishments.All(ctx)
	if !ok {
		return nil, apperrors.NewInternalError("failed to list establishments")
	}
	return establishments, nil
}

// Filter returns establishments matching the given name substring
// (case-sensitive) and exact type; both must hold when both are given,
// and with neither this is equivalent to List.
func (s *EstablishmentService) Filter(ctx context.Context, name, estType string) ([]domain.Establishment, error) {
	establishments, ok := s.establishments.Filter(ctx, name, estType)
	if !ok {
		return nil, apperrors.NewInternalError("failed to filter establishments")
	}
	return establishments, nil
}

// GetRules returns the rules row of the given establishment.
func (s *EstablishmentService) GetRules(ctx context.Context, establishmentID string) (*domain.EstablishmentRules, error) {
	if existing := s.establishments.GetByID(ctx, establishmentID); existing == nil {
		return nil, apperrors.NewNotFoundError("establishment")
	}

	rules := s.rules.GetByEstablishment(ctx, establishmentID)
	if rules == nil {
		return nil, apperrors.NewNotFoundError("establishment rules")
	}
	return rules, nil
}

// EditRules merges the supplied fields into the rules row of the given
// establishment.
func (s *EstablishmentService) EditRules(ctx context.Context, establishmentID string, fields map[string]interface{}) (*domain.EstablishmentRules, error) {
	rules := s.rules.GetByEstablishment(ctx, establishmentID)
	if rules == nil {
		return nil, apperrors.NewNotFoundError("establishment rules")
	}

	updated := s.rules.Edit(ctx, rules.ID, fields)
	if updated == nil {
		return nil, apperrors.NewInternalError("failed to edit establishment rules")
	}
	return updated, nil
}
