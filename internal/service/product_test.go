package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oKauaDev/establo/internal/domain"
	apperrors "github.com/oKauaDev/establo/pkg/errors"
)

func createEstablishment(t *testing.T, env *testEnv) *domain.Establishment {
	t.Helper()
	ctx := context.Background()
	owner := createOwner(t, env)
	establishment, err := env.establishments.Create(ctx, "Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)
	return establishment
}

func TestProductCreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	establishment := createEstablishment(t, env)

	created, err := env.products.Create(ctx, "Coffee", 9.90, establishment.ID)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Coffee", created.Name)
	assert.Equal(t, 9.90, created.Price)
	assert.Equal(t, establishment.ID, created.EstablishmentID)

	fetched, err := env.products.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestProductCreateMissingEstablishment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.products.Create(ctx, "Coffee", 9.90, "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestProductCapacityCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("zero existing products passes", func(t *testing.T) {
		env := newTestEnv()
		establishment := createEstablishment(t, env)

		_, err := env.products.Create(ctx, "First", 1.0, establishment.ID)
		require.NoError(t, err)
	})

	t.Run("one existing product still fits the default limits", func(t *testing.T) {
		env := newTestEnv()
		establishment := createEstablishment(t, env)

		_, err := env.products.Create(ctx, "First", 1.0, establishment.ID)
		require.NoError(t, err)

		// 1 product * 4 pictures = 4, within the default limit of 5
		_, err = env.products.Create(ctx, "Second", 2.0, establishment.ID)
		require.NoError(t, err)
	})

	t.Run("two existing products exceed the default picture limit", func(t *testing.T) {
		env := newTestEnv()
		establishment := createEstablishment(t, env)

		_, err := env.products.Create(ctx, "First", 1.0, establishment.ID)
		require.NoError(t, err)
		_, err = env.products.Create(ctx, "Second", 2.0, establishment.ID)
		require.NoError(t, err)

		// 2 products * 4 pictures = 8 > 5
		_, err = env.products.Create(ctx, "Third", 3.0, establishment.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
		assert.Contains(t, err.Error(), "picture limit reached")
	})

	t.Run("video limit is reported when pictures fit", func(t *testing.T) {
		env := newTestEnv()
		establishment := createEstablishment(t, env)

		_, err := env.establishments.EditRules(ctx, establishment.ID, map[string]interface{}{
			"picturesLimit": 100,
			"videoLimit":    1,
		})
		require.NoError(t, err)

		_, err = env.products.Create(ctx, "First", 1.0, establishment.ID)
		require.NoError(t, err)
		_, err = env.products.Create(ctx, "Second", 2.0, establishment.ID)
		require.NoError(t, err)

		// 2 products * 1 video = 2 > 1
		_, err = env.products.Create(ctx, "Third", 3.0, establishment.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
		assert.Contains(t, err.Error(), "video limit reached")
	})

	t.Run("no rules row means no capacity check", func(t *testing.T) {
		env := newTestEnv()
		establishment := createEstablishment(t, env)

		rules := env.rulesRepo.GetByEstablishment(ctx, establishment.ID)
		require.NotNil(t, rules)
		require.True(t, env.rulesRepo.Delete(ctx, rules.ID))

		for i := 0; i < 10; i++ {
			_, err := env.products.Create(ctx, "Unbounded", 1.0, establishment.ID)
			require.NoError(t, err)
		}
	})
}

func TestProductCountIsScopedPerEstablishment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	first, err := env.establishments.Create(ctx, "First Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)
	second, err := env.establishments.Create(ctx, "Second Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)

	_, err = env.products.Create(ctx, "One", 1.0, first.ID)
	require.NoError(t, err)
	_, err = env.products.Create(ctx, "Two", 2.0, first.ID)
	require.NoError(t, err)

	// the other establishment's products do not count here
	_, err = env.products.Create(ctx, "Fresh", 1.0, second.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, env.productRepo.CountByEstablishment(ctx, first.ID))
	assert.Equal(t, 1, env.productRepo.CountByEstablishment(ctx, second.ID))
}

func TestProductListByEstablishment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner := createOwner(t, env)

	first, err := env.establishments.Create(ctx, "First Mall", owner.ID, domain.EstablishmentTypeShopping)
	require.NoError(t, err)
	second, err := env.establishments.Create(ctx, "Second Mall", owner.ID, domain.EstablishmentTypeLocal)
	require.NoError(t, err)

	_, err = env.products.Create(ctx, "One", 1.0, first.ID)
	require.NoError(t, err)
	_, err = env.products.Create(ctx, "Two", 2.0, second.ID)
	require.NoError(t, err)

	products, err := env.products.ListByEstablishment(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "One", products[0].Name)

	_, err = env.products.ListByEstablishment(ctx, "missing")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestProductEditAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	establishment := createEstablishment(t, env)

	created, err := env.products.Create(ctx, "Coffee", 9.90, establishment.ID)
	require.NoError(t, err)

	edited, err := env.products.Edit(ctx, created.ID, map[string]interface{}{"price": 12.50})
	require.NoError(t, err)
	assert.Equal(t, 12.50, edited.Price)
	assert.Equal(t, "Coffee", edited.Name)

	require.NoError(t, env.products.Delete(ctx, created.ID))

	_, err = env.products.Get(ctx, created.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
