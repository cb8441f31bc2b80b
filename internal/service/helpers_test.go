package service

import (
	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/repository"
	"github.com/oKauaDev/establo/internal/store/memory"
)

type testEnv struct {
	store          *memory.Store
	users          *UserService
	establishments *EstablishmentService
	products       *ProductService
	rulesRepo      *repository.EstablishmentRulesRepository
	productRepo    *repository.ProductRepository
}

func newTestEnv() *testEnv {
	s := memory.New()
	tables := repository.DefaultTables()
	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(s, tables)
	establishmentRepo := repository.NewEstablishmentRepository(s, tables)
	rulesRepo := repository.NewEstablishmentRulesRepository(s, tables)
	productRepo := repository.NewProductRepository(s, tables)

	return &testEnv{
		store:          s,
		users:          NewUserService(userRepo, logger),
		establishments: NewEstablishmentService(userRepo, establishmentRepo, rulesRepo, s, logger),
		products:       NewProductService(productRepo, establishmentRepo, rulesRepo, logger),
		rulesRepo:      rulesRepo,
		productRepo:    productRepo,
	}
}
