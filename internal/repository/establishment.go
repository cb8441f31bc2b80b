package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/store"
)

// EstablishmentRepository persists establishments. The ownership
// precondition lives in the service layer, not here.
type EstablishmentRepository struct {
	store store.Store
	table string
}

// NewEstablishmentRepository creates an establishment repository.
func NewEstablishmentRepository(s store.Store, tables Tables) *EstablishmentRepository {
	return &EstablishmentRepository{store: s, table: tables.Establishment}
}

// GetByID returns the establishment with the given id, or nil.
func (r *EstablishmentRepository) GetByID(ctx context.Context, id string) *domain.Establishment {
	item, ok := r.store.GetByKey(ctx, r.table, id)
	if !ok {
		return nil
	}
	var establishment domain.Establishment
	if err := store.UnmarshalItem(item, &establishment); err != nil {
		return nil
	}
	return &establishment
}

// NewItem builds a fresh establishment and its store item for the atomic
// establishment-plus-rules write. It does not touch the store.
func (r *EstablishmentRepository) NewItem(name, ownerID string, estType domain.EstablishmentType) (store.TableItem, *domain.Establishment) {
	establishment := domain.Establishment{
		ID:      uuid.New().String(),
		Name:    name,
		OwnerID: ownerID,
		Type:    estType,
	}

	item, err := store.MarshalItem(establishment)
	if err != nil {
		return store.TableItem{}, nil
	}
	return store.TableItem{Table: r.table, Item: item}, &establishment
}

// Edit merges the supplied fields and returns the full post-merge record.
func (r *EstablishmentRepository) Edit(ctx context.Context, id string, fields map[string]interface{}) *domain.Establishment {
	item, ok := r.store.UpdateFields(ctx, r.table, id, fields)
	if !ok {
		return nil
	}
	var establishment domain.Establishment
	if err := store.UnmarshalItem(item, &establishment); err != nil {
		return nil
	}
	return &establishment
}

// Delete removes the establishment by id.
func (r *EstablishmentRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(ctx, r.table, id)
}

// All returns every establishment.
func (r *EstablishmentRepository) All(ctx context.Context) ([]domain.Establishment, bool) {
	items, ok := r.store.ScanAll(ctx, r.table)
	if !ok {
		return nil, false
	}
	return unmarshalEstablishments(items), true
}

// Filter returns establishments whose name contains name (case-sensitive)
// and whose type equals estType. Empty arguments are omitted from the
// filter; with both empty this is equivalent to All.
func (r *EstablishmentRepository) Filter(ctx context.Context, name, estType string) ([]domain.Establishment, bool) {
	conds := []store.Condition{}
	if name != "" {
		conds = append(conds, store.ContainsMatch("name", name))
	}
	if estType != "" {
		conds = append(conds, store.Equals("type", estType))
	}
	if len(conds) == 0 {
		return r.All(ctx)
	}

	items, ok := r.store.ScanFiltered(ctx, r.table, conds)
	if !ok {
		return nil, false
	}
	return unmarshalEstablishments(items), true
}

func unmarshalEstablishments(items []store.Item) []domain.Establishment {
	establishments := make([]domain.Establishment, 0, len(items))
	for _, item := range items {
		var establishment domain.Establishment
		if err := store.UnmarshalItem(item, &establishment); err != nil {
			continue
		}
		establishments = append(establishments, establishment)
	}
	return establishments
}
