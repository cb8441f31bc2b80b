// Package di wires the application dependency graph with google/wire.
package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/config"
	"github.com/oKauaDev/establo/internal/handlers"
	"github.com/oKauaDev/establo/internal/repository"
	"github.com/oKauaDev/establo/internal/service"
	"github.com/oKauaDev/establo/internal/store"
)

// Container holds all application dependencies.
type Container struct {
	Config               *config.Config
	Logger               *zap.Logger
	DynamoDBClient       *awsdynamodb.Client
	Store                store.Store
	UserService          *service.UserService
	EstablishmentService *service.EstablishmentService
	ProductService       *service.ProductService
	Router               *handlers.Router
}

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates the AWS client configuration.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
}

// ProvideDynamoDBClient creates the long-lived DynamoDB client handle.
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideStore creates the storage gateway.
func ProvideStore(client *awsdynamodb.Client, logger *zap.Logger) store.Store {
	return store.NewDynamoStore(client, logger)
}

// ProvideTables exposes the configured table names.
func ProvideTables(cfg *config.Config) repository.Tables {
	return cfg.Tables
}

// ProvideRouter creates the HTTP router.
func ProvideRouter(
	users *service.UserService,
	establishments *service.EstablishmentService,
	products *service.ProductService,
	logger *zap.Logger,
) *handlers.Router {
	return handlers.NewRouter(users, establishments, products, logger)
}
