// Package bootstrap provisions the entity tables at startup when they do
// not exist yet. Provisioning failures are logged and startup proceeds;
// the server may still come up against partially provisioned storage.
package bootstrap

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/repository"
)

const (
	readCapacityUnits  = 5
	writeCapacityUnits = 5
)

func throughput() *types.ProvisionedThroughput {
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(readCapacityUnits),
		WriteCapacityUnits: aws.Int64(writeCapacityUnits),
	}
}

func idKeyedTable(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		ProvisionedThroughput: throughput(),
	}
}

func userTable(name string) *dynamodb.CreateTableInput {
	input := idKeyedTable(name)
	input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("email"),
		AttributeType: types.ScalarAttributeTypeS,
	})
	input.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
		{
			IndexName: aws.String(repository.EmailIndex),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
			},
			Projection:            &types.Projection{ProjectionType: types.ProjectionTypeAll},
			ProvisionedThroughput: throughput(),
		},
	}
	return input
}

// EnsureTables creates every missing entity table.
func EnsureTables(ctx context.Context, client *dynamodb.Client, tables repository.Tables, logger *zap.Logger) {
	existing, err := client.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		logger.Error("failed to list tables", zap.Error(err))
		return
	}

	present := make(map[string]bool, len(existing.TableNames))
	for _, name := range existing.TableNames {
		present[name] = true
	}

	inputs := []*dynamodb.CreateTableInput{
		idKeyedTable(tables.EstablishmentRules),
		idKeyedTable(tables.Establishment),
		idKeyedTable(tables.Product),
		userTable(tables.User),
	}

	for _, input := range inputs {
		name := aws.ToString(input.TableName)
		if present[name] {
			continue
		}

		logger.Info("table not found, creating", zap.String("table", name))
		if _, err := client.CreateTable(ctx, input); err != nil {
			logger.Error("failed to create table", zap.String("table", name), zap.Error(err))
			continue
		}
		logger.Info("table created", zap.String("table", name))
	}
}
