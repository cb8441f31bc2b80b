package memory

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oKauaDev/establo/internal/store"
)

func stringItem(pairs map[string]string) store.Item {
	item := store.Item{}
	for k, v := range pairs {
		item[k] = &types.AttributeValueMemberS{Value: v}
	}
	return item
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	ok := s.Put(ctx, "Product", stringItem(map[string]string{"id": "p1", "name": "Coffee"}))
	require.True(t, ok)

	item, found := s.GetByKey(ctx, "Product", "p1")
	require.True(t, found)
	assert.Equal(t, "Coffee", item["name"].(*types.AttributeValueMemberS).Value)

	_, found = s.GetByKey(ctx, "Product", "missing")
	assert.False(t, found)
}

func TestUpdateFieldsMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.True(t, s.Put(ctx, "User", stringItem(map[string]string{
		"id": "u1", "name": "Alice", "email": "alice@example.com",
	})))

	merged, ok := s.UpdateFields(ctx, "User", "u1", map[string]interface{}{"name": "Alicia"})
	require.True(t, ok)
	assert.Equal(t, "Alicia", merged["name"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "alice@example.com", merged["email"].(*types.AttributeValueMemberS).Value)
}

func TestUpdateFieldsEmptySetIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.True(t, s.Put(ctx, "User", stringItem(map[string]string{"id": "u1", "name": "Alice"})))

	merged, ok := s.UpdateFields(ctx, "User", "u1", map[string]interface{}{})
	require.True(t, ok)
	assert.Equal(t, "Alice", merged["name"].(*types.AttributeValueMemberS).Value)
}

func TestScanFilteredContainsAndEquals(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.True(t, s.Put(ctx, "Establishment", stringItem(map[string]string{"id": "e1", "name": "Test Mall", "type": "shopping"})))
	require.True(t, s.Put(ctx, "Establishment", stringItem(map[string]string{"id": "e2", "name": "Test Corner", "type": "local"})))
	require.True(t, s.Put(ctx, "Establishment", stringItem(map[string]string{"id": "e3", "name": "Plaza", "type": "shopping"})))

	items, ok := s.ScanFiltered(ctx, "Establishment", []store.Condition{
		store.ContainsMatch("name", "Test"),
		store.Equals("type", "shopping"),
	})
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "e1", items[0]["id"].(*types.AttributeValueMemberS).Value)

	// contains is case-sensitive
	items, ok = s.ScanFiltered(ctx, "Establishment", []store.Condition{
		store.ContainsMatch("name", "test"),
	})
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestCountFiltered(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.True(t, s.Put(ctx, "Product", stringItem(map[string]string{"id": "p1", "establishmentId": "e1"})))
	require.True(t, s.Put(ctx, "Product", stringItem(map[string]string{"id": "p2", "establishmentId": "e1"})))
	require.True(t, s.Put(ctx, "Product", stringItem(map[string]string{"id": "p3", "establishmentId": "e2"})))

	count := s.CountFiltered(ctx, "Product", []store.Condition{store.Equals("establishmentId", "e1")})
	assert.Equal(t, 2, count)
}

func TestQueryByIndex(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.True(t, s.Put(ctx, "User", stringItem(map[string]string{"id": "u1", "email": "a@example.com"})))
	require.True(t, s.Put(ctx, "User", stringItem(map[string]string{"id": "u2", "email": "b@example.com"})))

	items, ok := s.QueryByIndex(ctx, "User", "EmailIndex", "email", "b@example.com")
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "u2", items[0]["id"].(*types.AttributeValueMemberS).Value)
}

func TestTransactPutWritesAllItems(t *testing.T) {
	ctx := context.Background()
	s := New()

	ok := s.TransactPut(ctx, []store.TableItem{
		{Table: "Establishment", Item: stringItem(map[string]string{"id": "e1", "name": "Mall"})},
		{Table: "EstablishmentRules", Item: stringItem(map[string]string{"id": "r1", "establishmentId": "e1"})},
	})
	require.True(t, ok)

	_, found := s.GetByKey(ctx, "Establishment", "e1")
	assert.True(t, found)
	_, found = s.GetByKey(ctx, "EstablishmentRules", "r1")
	assert.True(t, found)
}

func TestTransactPutFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.FailOn("TransactPut")

	ok := s.TransactPut(ctx, []store.TableItem{
		{Table: "Establishment", Item: stringItem(map[string]string{"id": "e1"})},
		{Table: "EstablishmentRules", Item: stringItem(map[string]string{"id": "r1"})},
	})
	require.False(t, ok)

	_, found := s.GetByKey(ctx, "Establishment", "e1")
	assert.False(t, found)
	_, found = s.GetByKey(ctx, "EstablishmentRules", "r1")
	assert.False(t, found)
}

func TestInjectedFailuresSurfaceAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.True(t, s.Put(ctx, "User", stringItem(map[string]string{"id": "u1"})))

	s.FailOn("GetByKey")
	_, found := s.GetByKey(ctx, "User", "u1")
	assert.False(t, found)

	s.ClearFailures()
	_, found = s.GetByKey(ctx, "User", "u1")
	assert.True(t, found)
}
