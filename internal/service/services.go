// Package service sits between the handlers and the DAO engines.
//
// It receives validated entities from the handler layer, turns a missing
// row into a 404 before updating or deleting, and calls the repositories.
package service

import (
	"github.com/deppfellow/northwind/internal/model"
	"github.com/deppfellow/northwind/internal/repository"
	"github.com/deppfellow/northwind/internal/server"
)

type Services struct {
	Auth      *AuthService
	Customers *EntityService[model.Customer, string]
	Shippers  *EntityService[model.Shipper, int64]
	Products  *EntityService[model.Product, int64]
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	return &Services{
		Auth:      authService,
		Customers: NewEntityService[model.Customer, string]("customer", repos.Customers),
		Shippers:  NewEntityService[model.Shipper, int64]("shipper", repos.Shippers),
		Products:  NewEntityService[model.Product, int64]("product", repos.Products),
	}, nil
}
