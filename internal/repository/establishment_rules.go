package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/store"
)

// Default content limits for a freshly created establishment.
const (
	DefaultPicturesLimit = 5
	DefaultVideoLimit    = 5
)

// EstablishmentRulesRepository persists the per-establishment content
// limits. Rows are only ever created through NewItem as part of the
// atomic establishment creation, never on their own.
type EstablishmentRulesRepository struct {
	store store.Store
	table string
}

// NewEstablishmentRulesRepository creates a rules repository.
func NewEstablishmentRulesRepository(s store.Store, tables Tables) *EstablishmentRulesRepository {
	return &EstablishmentRulesRepository{store: s, table: tables.EstablishmentRules}
}

// GetByID returns the rules row with the given id, or nil.
func (r *EstablishmentRulesRepository) GetByID(ctx context.Context, id string) *domain.EstablishmentRules {
	item, ok := r.store.GetByKey(ctx, r.table, id)
	if !ok {
		return nil
	}
	var rules domain.EstablishmentRules
	if err := store.UnmarshalItem(item, &rules); err != nil {
		return nil
	}
	return &rules
}

// GetByEstablishment returns the rules row for the given establishment,
// or nil. At most one row exists per establishment by invariant; the
// first match wins.
func (r *EstablishmentRulesRepository) GetByEstablishment(ctx context.Context, establishmentID string) *domain.EstablishmentRules {
	items, ok := r.store.ScanFiltered(ctx, r.table, []store.Condition{
		store.Equals("establishmentId", establishmentID),
	})
	if !ok || len(items) == 0 {
		return nil
	}
	var rules domain.EstablishmentRules
	if err := store.UnmarshalItem(items[0], &rules); err != nil {
		return nil
	}
	return &rules
}

// NewItem builds a fresh rules row and its store item for the atomic
// establishment-plus-rules write. It does not touch the store. The
// establishment service is the sole caller.
func (r *EstablishmentRulesRepository) NewItem(establishmentID string, picturesLimit, videoLimit int) (store.TableItem, *domain.EstablishmentRules) {
	rules := domain.EstablishmentRules{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		PicturesLimit:   picturesLimit,
		VideoLimit:      videoLimit,
	}

	item, err := store.MarshalItem(rules)
	if err != nil {
		return store.TableItem{}, nil
	}
	return store.TableItem{Table: r.table, Item: item}, &rules
}

// Edit merges the supplied fields and returns the full post-merge record.
func (r *EstablishmentRulesRepository) Edit(ctx context.Context, id string, fields map[string]interface{}) *domain.EstablishmentRules {
	item, ok := r.store.UpdateFields(ctx, r.table, id, fields)
	if !ok {
		return nil
	}
	var rules domain.EstablishmentRules
	if err := store.UnmarshalItem(item, &rules); err != nil {
		return nil
	}
	return &rules
}

// Delete removes the rules row by id.
func (r *EstablishmentRulesRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(ctx, r.table, id)
}
