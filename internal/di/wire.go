//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/oKauaDev/establo/internal/config"
	"github.com/oKauaDev/establo/internal/repository"
	"github.com/oKauaDev/establo/internal/service"
)

// SuperSet is the main provider set containing all providers.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideStore,
	ProvideTables,
	repository.NewUserRepository,
	repository.NewEstablishmentRepository,
	repository.NewEstablishmentRulesRepository,
	repository.NewProductRepository,
	service.NewUserService,
	service.NewEstablishmentService,
	service.NewProductService,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
