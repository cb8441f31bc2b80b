package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoStore implements Store on top of DynamoDB. Tables are keyed
// solely by an "id" string attribute.
type DynamoStore struct {
	client *dynamodb.Client
	logger *zap.Logger
}

// NewDynamoStore creates a DynamoDB-backed store gateway.
func NewDynamoStore(client *dynamodb.Client, logger *zap.Logger) *DynamoStore {
	return &DynamoStore{client: client, logger: logger}
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (s *DynamoStore) GetByKey(ctx context.Context, table, id string) (Item, bool) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key(id),
	})
	if err != nil {
		s.logger.Error("get item failed", zap.String("table", table), zap.String("id", id), zap.Error(err))
		return nil, false
	}
	if result.Item == nil {
		return nil, false
	}
	return result.Item, true
}

func (s *DynamoStore) Put(ctx context.Context, table string, item Item) bool {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		s.logger.Error("put item failed", zap.String("table", table), zap.Error(err))
		return false
	}
	return true
}

func (s *DynamoStore) UpdateFields(ctx context.Context, table, id string, fields map[string]interface{}) (Item, bool) {
	if len(fields) == 0 {
		return s.GetByKey(ctx, table, id)
	}

	update := expression.UpdateBuilder{}
	for name, value := range fields {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		s.logger.Error("build update expression failed", zap.String("table", table), zap.Error(err))
		return nil, false
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		s.logger.Error("update item failed", zap.String("table", table), zap.String("id", id), zap.Error(err))
		return nil, false
	}
	return result.Attributes, true
}

func (s *DynamoStore) DeleteByKey(ctx context.Context, table, id string) bool {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key(id),
	})
	if err != nil {
		s.logger.Error("delete item failed", zap.String("table", table), zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

func (s *DynamoStore) ScanAll(ctx context.Context, table string) ([]Item, bool) {
	return s.scan(ctx, table, nil)
}

func (s *DynamoStore) ScanFiltered(ctx context.Context, table string, conds []Condition) ([]Item, bool) {
	return s.scan(ctx, table, conds)
}

func (s *DynamoStore) scan(ctx context.Context, table string, conds []Condition) ([]Item, bool) {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}

	if len(conds) > 0 {
		expr, err := expression.NewBuilder().WithFilter(buildFilter(conds)).Build()
		if err != nil {
			s.logger.Error("build filter expression failed", zap.String("table", table), zap.Error(err))
			return nil, false
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	items := []Item{}
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("scan failed", zap.String("table", table), zap.Error(err))
			return nil, false
		}
		items = append(items, page.Items...)
	}
	return items, true
}

func (s *DynamoStore) QueryByIndex(ctx context.Context, table, index, attr, value string) ([]Item, bool) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(attr).Equal(expression.Value(value))).
		Build()
	if err != nil {
		s.logger.Error("build key condition failed", zap.String("table", table), zap.String("index", index), zap.Error(err))
		return nil, false
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		s.logger.Error("query index failed", zap.String("table", table), zap.String("index", index), zap.Error(err))
		return nil, false
	}
	return result.Items, true
}

func (s *DynamoStore) CountFiltered(ctx context.Context, table string, conds []Condition) int {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
		Select:    types.SelectCount,
	}

	if len(conds) > 0 {
		expr, err := expression.NewBuilder().WithFilter(buildFilter(conds)).Build()
		if err != nil {
			s.logger.Error("build filter expression failed", zap.String("table", table), zap.Error(err))
			return 0
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	count := 0
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("count scan failed", zap.String("table", table), zap.Error(err))
			return 0
		}
		count += int(page.Count)
	}
	return count
}

func (s *DynamoStore) TransactPut(ctx context.Context, items []TableItem) bool {
	transactItems := make([]types.TransactWriteItem, 0, len(items))
	for _, ti := range items {
		transactItems = append(transactItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(ti.Table),
				Item:      ti.Item,
			},
		})
	}

	_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		s.logger.Error("transact write failed", zap.Int("items", len(items)), zap.Error(err))
		return false
	}
	return true
}

func buildFilter(conds []Condition) expression.ConditionBuilder {
	filter := condToExpr(conds[0])
	for _, cond := range conds[1:] {
		filter = filter.And(condToExpr(cond))
	}
	return filter
}

func condToExpr(cond Condition) expression.ConditionBuilder {
	if cond.Contains {
		return expression.Name(cond.Name).Contains(cond.Value)
	}
	return expression.Name(cond.Name).Equal(expression.Value(cond.Value))
}

// MarshalItem converts a domain value into a store item.
func MarshalItem(v interface{}) (Item, error) {
	return attributevalue.MarshalMap(v)
}

// UnmarshalItem converts a store item into a domain value.
func UnmarshalItem(item Item, v interface{}) error {
	return attributevalue.UnmarshalMap(item, v)
}
