// Package memory provides an in-memory Store implementation for tests.
// It mirrors the behavior of the DynamoDB gateway, including the
// swallow-and-return-absent failure policy, and supports injecting
// per-method failures to exercise error paths.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/oKauaDev/establo/internal/store"
)

// Store is a mutex-guarded in-memory key-value store.
type Store struct {
	mu     sync.RWMutex
	tables map[string]map[string]store.Item

	// method name -> fail next calls
	failOn map[string]bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		tables: make(map[string]map[string]store.Item),
		failOn: make(map[string]bool),
	}
}

// FailOn makes every subsequent call to the named method report failure.
func (s *Store) FailOn(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[method] = true
}

// ClearFailures removes all injected failures.
func (s *Store) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn = make(map[string]bool)
}

func (s *Store) failing(method string) bool {
	return s.failOn[method]
}

func (s *Store) table(name string) map[string]store.Item {
	t, ok := s.tables[name]
	if !ok {
		t = make(map[string]store.Item)
		s.tables[name] = t
	}
	return t
}

func itemID(item store.Item) string {
	if av, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}

func copyItem(item store.Item) store.Item {
	out := make(store.Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (s *Store) GetByKey(_ context.Context, table, id string) (store.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing("GetByKey") {
		return nil, false
	}
	item, ok := s.tables[table][id]
	if !ok {
		return nil, false
	}
	return copyItem(item), true
}

func (s *Store) Put(_ context.Context, table string, item store.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing("Put") {
		return false
	}
	s.table(table)[itemID(item)] = copyItem(item)
	return true
}

func (s *Store) UpdateFields(_ context.Context, table, id string, fields map[string]interface{}) (store.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing("UpdateFields") {
		return nil, false
	}

	t := s.table(table)
	item, ok := t[id]
	if !ok {
		// DynamoDB UpdateItem upserts: an absent key becomes a new record.
		item = store.Item{"id": &types.AttributeValueMemberS{Value: id}}
	}
	merged := copyItem(item)
	for name, value := range fields {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, false
		}
		merged[name] = av
	}
	t[id] = merged
	return copyItem(merged), true
}

func (s *Store) DeleteByKey(_ context.Context, table, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing("DeleteByKey") {
		return false
	}
	delete(s.tables[table], id)
	return true
}

func (s *Store) ScanAll(_ context.Context, table string) ([]store.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing("ScanAll") {
		return nil, false
	}
	items := []store.Item{}
	for _, item := range s.tables[table] {
		items = append(items, copyItem(item))
	}
	return items, true
}

func (s *Store) ScanFiltered(_ context.Context, table string, conds []store.Condition) ([]store.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing("ScanFiltered") {
		return nil, false
	}
	items := []store.Item{}
	for _, item := range s.tables[table] {
		if matches(item, conds) {
			items = append(items, copyItem(item))
		}
	}
	return items, true
}

func (s *Store) QueryByIndex(_ context.Context, table, _ string, attr, value string) ([]store.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing("QueryByIndex") {
		return nil, false
	}
	items := []store.Item{}
	for _, item := range s.tables[table] {
		if stringAttr(item, attr) == value {
			items = append(items, copyItem(item))
		}
	}
	return items, true
}

func (s *Store) CountFiltered(_ context.Context, table string, conds []store.Condition) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing("CountFiltered") {
		return 0
	}
	count := 0
	for _, item := range s.tables[table] {
		if matches(item, conds) {
			count++
		}
	}
	return count
}

func (s *Store) TransactPut(_ context.Context, items []store.TableItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing("TransactPut") {
		return false
	}
	for _, ti := range items {
		s.table(ti.Table)[itemID(ti.Item)] = copyItem(ti.Item)
	}
	return true
}

func matches(item store.Item, conds []store.Condition) bool {
	for _, cond := range conds {
		value := stringAttr(item, cond.Name)
		if cond.Contains {
			if !strings.Contains(value, cond.Value) {
				return false
			}
		} else if value != cond.Value {
			return false
		}
	}
	return true
}

func stringAttr(item store.Item, name string) string {
	if av, ok := item[name].(*types.AttributeValueMemberS); ok {
		return av.Value
	}
	return ""
}
