package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oKauaDev/establo/internal/domain"
	"github.com/oKauaDev/establo/internal/repository"
	apperrors "github.com/oKauaDev/establo/pkg/errors"
)

func createOwner(t *testing.T, env *testEnv) *domain.User {
	t.Helper()
	owner, err := env.users.Create(context.Background(), "Owner", "owner@example.com", domain.UserTypeOwner)
	require.NoError(t, err)
	return owner
}

func TestEstablishmentCreateWithMissingOwner(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.establishments.Create(ctx, "Mall", "missing-owner", domain.EstablishmentTypeShopping)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestEstablishmentCreateWithCustomerOwnerIsForbidden(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	customer, err := env.users.Create(ctx, "Customer", "customer@example.com", domain.UserTypeCustomer)
	require.NoError(t, err)

	_, err = env.establishments.Create(ctx, "Mall", customer.ID, domain.EstablishmentTypeShopping)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
}

func TestEstablishmentCreateAlsoCreatesDefaultRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, establishment.OwnerID)

	rules := env.rulesRepo.GetByEstablishment(ctx, establishment.ID)
	require.NotNil(t, rules, "exactly one rules row must exist after creation")
	assert.Equal(t, establishment.ID, rules.EstablishmentID)
	assert.Equal(t, repository.DefaultPicturesLimit, rules.PicturesLimit)
	assert.Equal(t, repository.DefaultVideoLimit, rules.VideoLimit)
}

func TestEstablishmentCreateTransactFailureLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	env.store.FailOn("TransactPut")

	_, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))

	env.store.ClearFailures()

	establishments, err := env.establishments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, establishments)
}

func TestEstablishmentDeleteCascadesRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	require.NoError(t, env.establishments.Delete(ctx, establishment.ID))

	_, err = env.establishments.Get(ctx, establishment.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.Nil(t, env.rulesRepo.GetByEstablishment(ctx, establishment.ID))
}

func TestEstablishmentDeleteWithoutRulesRow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	rules := env.rulesRepo.GetByEstablishment(ctx, establishment.ID)
	require.NotNil(t, rules)
	require.True(t, env.rulesRepo.Delete(ctx, rules.ID))

	// no rules row left; the cascade is skipped and the delete succeeds
	require.NoError(t, env.establishments.Delete(ctx, establishment.ID))
}

func TestEstablishmentDeleteStorageFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	env.store.FailOn("DeleteByKey")
	err = env.establishments.Delete(ctx, establishment.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}

func TestEstablishmentFilter(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	_, err := env.establishments.Create(ctx, "Test Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)
	_, err = env.establishments.Create(ctx, "Test Corner", owner.ID, domain.EstablishmentTypeLocal)
	require.NoError(t, err)
	_, err = env.establishments.Create(ctx, "Plaza", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	t.Run("name and type are conjunctive", func(t *testing.T) {
		results, err := env.establishments.Filter(ctx, "Test", "shopping")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Test Mall", results[0].Name)
	})

	t.Run("name containment is case-sensitive", func(t *testing.T) {
		results, err := env.establishments.Filter(ctx, "test", "")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("no filters is equivalent to list", func(t *testing.T) {
		filtered, err := env.establishments.Filter(ctx, "", "")
		require.NoError(t, err)
		listed, err := env.establishments.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, listed, filtered)
	})
}

func TestEstablishmentEditMergesFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	edited, err := env.establishments.Edit(ctx, establishment.ID, map[string]interface{}{"name": "Grand Mall"})
	require.NoError(t, err)
	assert.Equal(t, "Grand Mall", edited.Name)
	assert.Equal(t, establishment.Type, edited.Type)
	assert.Equal(t, establishment.OwnerID, edited.OwnerID)
}

func TestEstablishmentRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	rules, err := env.establishments.GetRules(ctx, establishment.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultPicturesLimit, rules.PicturesLimit)

	edited, err := env.establishments.EditRules(ctx, establishment.ID, map[string]interface{}{"picturesLimit": 20})
	require.NoError(t, err)
	assert.Equal(t, 20, edited.PicturesLimit)
	assert.Equal(t, repository.DefaultVideoLimit, edited.VideoLimit)

	_, err = env.establishments.GetRules(ctx, "missing")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
