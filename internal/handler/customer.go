package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/model"
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

type CustomerHandler struct {
	Handler
	customers *service.EntityService[model.Customer, string]
}

func NewCustomerHandler(s *server.Server, customers *service.EntityService[model.Customer, string]) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

func (h *CustomerHandler) List(c echo.Context, _ *ListRequest) ([]model.Customer, error) {
	return h.customers.List(c.Request().Context())
}

func (h *CustomerHandler) Get(c echo.Context, req *CustomerIDRequest) (model.Customer, error) {
	return h.customers.Get(c.Request().Context(), req.ID)
}

func (h *CustomerHandler) Create(c echo.Context, req *CreateCustomerRequest) (model.Customer, error) {
	return h.customers.Create(c.Request().Context(), req.toModel(req.ID))
}

func (h *CustomerHandler) Update(c echo.Context, req *UpdateCustomerRequest) (model.Customer, error) {
	return h.customers.Update(c.Request().Context(), req.ID, req.toModel(req.ID))
}

func (h *CustomerHandler) Delete(c echo.Context, req *CustomerIDRequest) error {
	return h.customers.Delete(c.Request().Context(), req.ID)
}
