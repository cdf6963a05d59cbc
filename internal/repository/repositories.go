// Package repository binds the Northwind entities to the generic DAO engine.
//
// Each entity contributes a dao.Table (descriptor, row mapper, parameter
// binder); the engine supplies the SQL and the CRUD behavior.
package repository

import (
	"fmt"

	"github.com/deppfellow/northwind/internal/dao"
	"github.com/deppfellow/northwind/internal/model"
	"github.com/deppfellow/northwind/internal/server"
)

// Repositories is the container handed to the service layer.
type Repositories struct {
	Customers *dao.Engine[model.Customer, string]
	Shippers  *dao.Engine[model.Shipper, int64]
	Products  *dao.Engine[model.Product, int64]
}

// NewRepositories builds one engine per table over the server's pool.
func NewRepositories(s *server.Server) (*Repositories, error) {
	opts := []dao.Option{dao.WithLogger(s.Logger)}
	if s.Config.Observability != nil {
		opts = append(opts, dao.WithSlowThreshold(s.Config.Observability.Logging.SlowQueryThreshold))
	}
	return newRepositories(s.DB.Pool, opts...)
}

func newRepositories(db dao.DBTX, opts ...dao.Option) (*Repositories, error) {
	customers, err := dao.New(db, CustomerTable, opts...)
	if err != nil {
		return nil, fmt.Errorf("customers repository: %w", err)
	}
	shippers, err := dao.New(db, ShipperTable, opts...)
	if err != nil {
		return nil, fmt.Errorf("shippers repository: %w", err)
	}
	products, err := dao.New(db, ProductTable, opts...)
	if err != nil {
		return nil, fmt.Errorf("products repository: %w", err)
	}

	return &Repositories{
		Customers: customers,
		Shippers:  shippers,
		Products:  products,
	}, nil
}
