package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/store"
)

// ProductRepository persists products. The capacity precondition lives in
// the service layer.
type ProductRepository struct {
	store store.Store
	table string
}

// NewProductRepository creates a product repository.
func NewProductRepository(s store.Store, tables Tables) *ProductRepository {
	return &ProductRepository{store: s, table: tables.Product}
}

// GetByID returns the product with the given id, or nil.
func (r *ProductRepository) GetByID(ctx context.Context, id string) *domain.Product {
	item, ok := r.store.GetByKey(ctx, r.table, id)
	if !ok {
		return nil
	}
	var product domain.Product
	if err := store.UnmarshalItem(item, &product); err != nil {
		return nil
	}
	return &product
}

// Create stores a new product with a generated id and returns it, or nil
// on storage failure.
func (r *ProductRepository) Create(ctx context.Context, name string, price float64, establishmentID string) *domain.Product {
	product := domain.Product{
		ID:              uuid.New().String(),
		Name:            name,
		Price:           price,
		EstablishmentID: establishmentID,
	}

	item, err := store.MarshalItem(product)
	if err != nil {
		return nil
	}
	if !r.store.Put(ctx, r.table, item) {
		return nil
	}
	return &product
}

// Edit merges the supplied fields and returns the full post-merge record.
func (r *ProductRepository) Edit(ctx context.Context, id string, fields map[string]interface{}) *domain.Product {
	item, ok := r.store.UpdateFields(ctx, r.table, id, fields)
	if !ok {
		return nil
	}
	var product domain.Product
	if err := store.UnmarshalItem(item, &product); err != nil {
		return nil
	}
	return &product
}

// Delete removes the product by id.
func (r *ProductRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(ctx, r.table, id)
}

// All returns every product.
func (r *ProductRepository) All(ctx context.Context) ([]domain.Product, bool) {
	items, ok := r.store.ScanAll(ctx, r.table)
	if !ok {
		return nil, false
	}
	return unmarshalProducts(items), true
}

// ByEstablishment returns the products of one establishment via a
// filtered scan.
func (r *ProductRepository) ByEstablishment(ctx context.Context, establishmentID string) ([]domain.Product, bool) {
	items, ok := r.store.ScanFiltered(ctx, r.table, []store.Condition{
		store.Equals("establishmentId", establishmentID),
	})
	if !ok {
		return nil, false
	}
	return unmarshalProducts(items), true
}

// CountByEstablishment counts the products of one establishment. Storage
// failures count as zero.
func (r *ProductRepository) CountByEstablishment(ctx context.Context, establishmentID string) int {
	return r.store.CountFiltered(ctx, r.table, []store.Condition{
		store.Equals("establishmentId", establishmentID),
	})
}

func unmarshalProducts(items []store.Item) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		var product domain.Product
		if err := store.UnmarshalItem(item, &product); err != nil {
			continue
		}
		products = append(products, product)
	}
	return products
}
