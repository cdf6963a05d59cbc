package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/model"
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

type ShipperHandler struct {
	Handler
	shippers *service.EntityService[model.Shipper, int64]
}

func NewShipperHandler(s *server.Server, shippers *service.EntityService[model.Shipper, int64]) *ShipperHandler {
	return &ShipperHandler{
		Handler:  NewHandler(s),
		shippers: shippers,
	}
}

func (h *ShipperHandler) List(c echo.Context, _ *ListRequest) ([]model.Shipper, error) {
	return h.shippers.List(c.Request().Context())
}

func (h *ShipperHandler) Get(c echo.Context, req *ShipperIDRequest) (model.Shipper, error) {
	return h.shippers.Get(c.Request().Context(), req.ID)
}

// Create ignores any id in the body; the store assigns it.
func (h *ShipperHandler) Create(c echo.Context, req *CreateShipperRequest) (model.Shipper, error) {
	return h.shippers.Create(c.Request().Context(), req.toModel(0))
}

func (h *ShipperHandler) Update(c echo.Context, req *UpdateShipperRequest) (model.Shipper, error) {
	return h.shippers.Update(c.Request().Context(), req.ID, req.toModel(req.ID))
}

func (h *ShipperHandler) Delete(c echo.Context, req *ShipperIDRequest) error {
	return h.shippers.Delete(c.Request().Context(), req.ID)
}
