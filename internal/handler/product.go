package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/model"
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

type ProductHandler struct {
	Handler
	products *service.EntityService[model.Product, int64]
}

func NewProductHandler(s *server.Server, products *service.EntityService[model.Product, int64]) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) List(c echo.Context, _ *ListRequest) ([]model.Product, error) {
	return h.products.List(c.Request().Context())
}

func (h *ProductHandler) Get(c echo.Context, req *ProductIDRequest) (model.Product, error) {
	return h.products.Get(c.Request().Context(), req.ID)
}

func (h *ProductHandler) Create(c echo.Context, req *CreateProductRequest) (model.Product, error) {
	return h.products.Create(c.Request().Context(), req.toModel(0))
}

func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (model.Product, error) {
	return h.products.Update(c.Request().Context(), req.ID, req.toModel(req.ID))
}

func (h *ProductHandler) Delete(c echo.Context, req *ProductIDRequest) error {
	return h.products.Delete(c.Request().Context(), req.ID)
}
