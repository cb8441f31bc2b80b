package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/store"
)

// UserRepository persists users. Email uniqueness is not enforced here;
// the service layer checks it before creating.
type UserRepository struct {
	store store.Store
	table string
}

// NewUserRepository creates a user repository over the given gateway.
func NewUserRepository(s store.Store, tables Tables) *UserRepository {
	return &UserRepository{store: s, table: tables.User}
}

// GetByID returns the user with the given id, or nil.
func (r *UserRepository) GetByID(ctx context.Context, id string) *domain.User {
	item, ok := r.store.GetByKey(ctx, r.table, id)
	if !ok {
		return nil
	}
	var user domain.User
	if err := store.UnmarshalItem(item, &user); err != nil {
		return nil
	}
	return &user
}

// GetByEmail returns the user with the given email via the EmailIndex,
// or nil. The caller is responsible for lower-casing the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) *domain.User {
	items, ok := r.store.QueryByIndex(ctx, r.table, EmailIndex, "email", email)
	if !ok || len(items) == 0 {
		return nil
	}
	var user domain.User
	if err := store.UnmarshalItem(items[0], &user); err != nil {
		return nil
	}
	return &user
}

// Create stores a new user with a generated id and returns it, or nil on
// storage failure.
func (r *UserRepository) Create(ctx context.Context, name, email string, userType domain.UserType) *domain.User {
	user := domain.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Type:  userType,
	}

	item, err := store.MarshalItem(user)
	if err != nil {
		return nil
	}
	if !r.store.Put(ctx, r.table, item) {
		return nil
	}
	return &user
}

// Edit merges the supplied fields into the user and returns the full
// post-merge record, or nil on storage failure.
func (r *UserRepository) Edit(ctx context.Context, id string, fields map[string]interface{}) *domain.User {
	item, ok := r.store.UpdateFields(ctx, r.table, id, fields)
	if !ok {
		return nil
	}
	var user domain.User
	if err := store.UnmarshalItem(item, &user); err != nil {
		return nil
	}
	return &user
}

// Delete removes the user by id.
func (r *UserRepository) Delete(ctx context.Context, id string) bool {
	return r.store.DeleteByKey(ctx, r.table, id)
}

// All returns every user. The bool is false on storage failure.
func (r *UserRepository) All(ctx context.Context) ([]domain.User, bool) {
	items, ok := r.store.ScanAll(ctx, r.table)
	if !ok {
		return nil, false
	}
	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		var user domain.User
		if err := store.UnmarshalItem(item, &user); err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, true
}
