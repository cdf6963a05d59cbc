package handler

import (
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	Customers *CustomerHandler
	Shippers  *ShipperHandler
	Products  *ProductHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s, services),
		Customers: NewCustomerHandler(s, services.Customers),
		Shippers:  NewShipperHandler(s, services.Shippers),
		Products:  NewProductHandler(s, services.Products),
	}
}
