// Package router builds the Echo instance: global middleware, the system
// routes and the /api/v1 resource routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/handler"
	"github.com/deppfellow/northwind/internal/middleware"
	"github.com/deppfellow/northwind/internal/server"
)

// NewRouter wires middleware in the order the request needs them: tracing
// first so every later step lands in the transaction, then request id and
// the request-scoped logger, then logging, recovery and headers.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	r.Use(
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.Global.Secure(),
		mws.Global.CORS(),
	)

	registerSystemRoutes(r, h)

	api := r.Group("/api/v1", mws.RateLimit.Limit())
	registerCustomerRoutes(api, h.Customers, mws.Auth)
	registerShipperRoutes(api, h.Shippers, mws.Auth)
	registerProductRoutes(api, h.Products, mws.Auth)

	return r
}

// Reads are public, writes require a Clerk session.
func registerCustomerRoutes(api *echo.Group, h *handler.CustomerHandler, auth *middleware.AuthMiddleware) {
	g := api.Group("/customers")
	g.GET("", handler.Handle[handler.ListRequest](h.Handler, h.List, http.StatusOK))
	g.GET("/:id", handler.Handle[handler.CustomerIDRequest](h.Handler, h.Get, http.StatusOK))

	w := g.Group("", auth.RequireAuth)
	w.POST("", handler.Handle[handler.CreateCustomerRequest](h.Handler, h.Create, http.StatusCreated))
	w.PUT("/:id", handler.Handle[handler.UpdateCustomerRequest](h.Handler, h.Update, http.StatusOK))
	w.DELETE("/:id", handler.HandleNoContent[handler.CustomerIDRequest](h.Handler, h.Delete, http.StatusNoContent))
}

func registerShipperRoutes(api *echo.Group, h *handler.ShipperHandler, auth *middleware.AuthMiddleware) {
	g := api.Group("/shippers")
	g.GET("", handler.Handle[handler.ListRequest](h.Handler, h.List, http.StatusOK))
	g.GET("/:id", handler.Handle[handler.ShipperIDRequest](h.Handler, h.Get, http.StatusOK))

	w := g.Group("", auth.RequireAuth)
	w.POST("", handler.Handle[handler.CreateShipperRequest](h.Handler, h.Create, http.StatusCreated))
	w.PUT("/:id", handler.Handle[handler.UpdateShipperRequest](h.Handler, h.Update, http.StatusOK))
	w.DELETE("/:id", handler.HandleNoContent[handler.ShipperIDRequest](h.Handler, h.Delete, http.StatusNoContent))
}

func registerProductRoutes(api *echo.Group, h *handler.ProductHandler, auth *middleware.AuthMiddleware) {
	g := api.Group("/products")
	g.GET("", handler.Handle[handler.ListRequest](h.Handler, h.List, http.StatusOK))
	g.GET("/:id", handler.Handle[handler.ProductIDRequest](h.Handler, h.Get, http.StatusOK))

	w := g.Group("", auth.RequireAuth)
	w.POST("", handler.Handle[handler.CreateProductRequest](h.Handler, h.Create, http.StatusCreated))
	w.PUT("/:id", handler.Handle[handler.UpdateProductRequest](h.Handler, h.Update, http.StatusOK))
	w.DELETE("/:id", handler.HandleNoContent[handler.ProductIDRequest](h.Handler, h.Delete, http.StatusNoContent))
}
