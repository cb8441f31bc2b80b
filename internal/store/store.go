// Package store is the storage gateway: a thin abstraction over a
// key-value store keyed by id. It is the only layer that talks to the
// store, and it never lets a store failure escape: every error is logged
// and surfaced to callers as an absent or false result. Callers therefore
// cannot distinguish an operational failure from "not found"; that trade
// is deliberate.
package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a raw store record. Items never leave the repository layer.
type Item = map[string]types.AttributeValue

// Condition is a single filter predicate. Conditions in one call are
// combined with AND. Only attribute equality and substring containment
// are supported.
type Condition struct {
	Name     string
	Value    string
	Contains bool
}

// Equals builds an equality condition.
func Equals(name, value string) Condition {
	return Condition{Name: name, Value: value}
}

// ContainsMatch builds a case-sensitive substring condition.
func ContainsMatch(name, value string) Condition {
	return Condition{Name: name, Value: value, Contains: true}
}

// TableItem pairs an item with its destination table for atomic writes.
type TableItem struct {
	Table string
	Item  Item
}

// Store is the gateway contract every repository depends on.
type Store interface {
	// GetByKey fetches one record by id. The bool is false when the
	// record is absent or the store call failed.
	GetByKey(ctx context.Context, table, id string) (Item, bool)

	// Put writes a full record.
	Put(ctx context.Context, table string, item Item) bool

	// UpdateFields merges only the supplied fields into the record and
	// returns the full post-merge record. An empty field set is a no-op
	// that returns the record unchanged.
	UpdateFields(ctx context.Context, table, id string, fields map[string]interface{}) (Item, bool)

	// DeleteByKey removes one record by id.
	DeleteByKey(ctx context.Context, table, id string) bool

	// ScanAll returns every record in the table.
	ScanAll(ctx context.Context, table string) ([]Item, bool)

	// ScanFiltered returns the records matching all conditions. With no
	// conditions it is equivalent to ScanAll.
	ScanFiltered(ctx context.Context, table string, conds []Condition) ([]Item, bool)

	// QueryByIndex does an exact-match lookup through a secondary index.
	QueryByIndex(ctx context.Context, table, index, attr, value string) ([]Item, bool)

	// CountFiltered counts the records matching all conditions. Failures
	// count as zero.
	CountFiltered(ctx context.Context, table string, conds []Condition) int

	// TransactPut writes all items or none of them.
	TransactPut(ctx context.Context, items []TableItem) bool
}
