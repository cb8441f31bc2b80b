package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/repository"
	apperrors "github.com/oKauaDev/establo/pkg/errors"
)

// Estimated media per product. The system tracks product counts, not
// per-product media, so capacity is estimated with fixed constants.
const (
	picturesPerProduct = 4
	videosPerProduct   = 1
)

// ProductService manages product lifecycle and the per-establishment
// capacity check.
type ProductService struct {
	products       *repository.ProductRepository
	establishments *repository.EstablishmentRepository
	rules          *repository.EstablishmentRulesRepository
	logger         *zap.Logger
}

// NewProductService creates a product service.
func NewProductService(
	products *repository.ProductRepository,
	establishments *repository.EstablishmentRepository,
	rules *repository.EstablishmentRulesRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products:       products,
		establishments: establishments,
		rules:          rules,
		logger:         logger,
	}
}

// Create stores a new product after checking the establishment exists
// and, when it has a rules row, that the estimated media load of the
// products it already holds stays within the limits. The estimate uses
// the count before this product is added. An establishment without a
// rules row gets no capacity check at all.
func (s *ProductService) Create(ctx context.Context, name string, price float64, establishmentID string) (*domain.Product, error) {
	establishment := s.establishments.GetByID(ctx, establishmentID)
	if establishment == nil {
		return nil, apperrors.NewNotFoundError("establishment")
	}

	if rules := s.rules.GetByEstablishment(ctx, establishment.ID); rules != nil {
		count := s.products.CountByEstablishment(ctx, establishment.ID)

		pictures := count * picturesPerProduct
		videos := count * videosPerProduct

		if pictures > rules.PicturesLimit {
			return nil, apperrors.NewForbiddenError("picture limit reached")
		}
		if videos > rules.VideoLimit {
			return nil, apperrors.NewForbiddenError("video limit reached")
		}
	}

	product := s.products.Create(ctx, name, price, establishmentID)
	if product == nil {
		return nil, apperrors.NewInternalError("failed to create product")
	}

	s.logger.Info("product created",
		zap.String("id", product.ID),
		zap.String("establishmentId", establishmentID),
	)
	return product, nil
}

// Get returns the product with the given id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product := s.products.GetByID(ctx, id)
	if product == nil {
		return nil, apperrors.NewNotFoundError("product")
	}
	return product, nil
}

// Edit merges the supplied fields into the product.
func (s *ProductService) Edit(ctx context.Context, id string, fields map[string]interface{}) (*domain.Product, error) {
	if existing := s.products.GetByID(ctx, id); existing == nil {
		return nil, apperrors.NewNotFoundError("product")
	}

	product := s.products.Edit(ctx, id, fields)
	if product == nil {
		return nil, apperrors.NewInternalError("failed to edit product")
	}
	return product, nil
}

// Delete removes the product with the given id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if existing := s.products.GetByID(ctx, id); existing == nil {
		return apperrors.NewNotFoundError("product")
	}

	if !s.products.Delete(ctx, id) {
		return apperrors.NewInternalError("failed to delete product")
	}

	s.logger.Info("product deleted", zap.String("id", id))
	return nil
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, ok := s.products.All(ctx)
	if !ok {
		return nil, apperrors.NewInternalError("failed to list products")
	}
	return products, nil
}

// ListByEstablishment returns the products of one establishment.
func (s *ProductService) ListByEstablishment(ctx context.Context, establishmentID string) ([]domain.Product, error) {
	if existing := s.establishments.GetByID(ctx, establishmentID); existing == nil {
		return nil, apperrors.NewNotFoundError("establishment")
	}

	products, ok := s.products.ByEstablishment(ctx, establishmentID)
	if !ok {
		return nil, apperrors.NewInternalError("failed to list products")
	}
	return products, nil
}
