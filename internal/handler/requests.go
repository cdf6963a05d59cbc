package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/northwind/internal/model"
)

var validate = validator.New()

// ListRequest carries nothing; list endpoints take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error { return nil }

// ---- customers ----

type CustomerFields struct {
	CompanyName  string `json:"companyName" validate:"required,max=40"`
	ContactName  string `json:"contactName" validate:"max=30"`
	ContactTitle string `json:"contactTitle" validate:"max=30"`
	Address      string `json:"address" validate:"max=60"`
	City         string `json:"city" validate:"max=15"`
	Region       string `json:"region" validate:"max=15"`
	PostalCode   string `json:"postalCode" validate:"max=10"`
	Country      string `json:"country" validate:"max=15"`
	Phone        string `json:"phone" validate:"max=24"`
	Fax          string `json:"fax" validate:"max=24"`
}

func (f CustomerFields) toModel(id string) model.Customer {
	return model.Customer{
		ID:           id,
		CompanyName:  f.CompanyName,
		ContactName:  f.ContactName,
		ContactTitle: f.ContactTitle,
		Address:      f.Address,
		City:         f.City,
		Region:       f.Region,
		PostalCode:   f.PostalCode,
		Country:      f.Country,
		Phone:        f.Phone,
		Fax:          f.Fax,
	}
}

// Customer ids are the five-letter Northwind codes, e.g. ALFKI.
type CustomerIDRequest struct {
	ID string `param:"id" validate:"required,alphanum,max=5"`
}

func (r *CustomerIDRequest) Validate() error { return validate.Struct(r) }

type CreateCustomerRequest struct {
	ID string `json:"id" validate:"required,alphanum,max=5"`
	CustomerFields
}

func (r *CreateCustomerRequest) Validate() error { return validate.Struct(r) }

type UpdateCustomerRequest struct {
	ID string `param:"id" json:"-" validate:"required,alphanum,max=5"`
	CustomerFields
}

func (r *UpdateCustomerRequest) Validate() error { return validate.Struct(r) }

// ---- shippers ----

type ShipperFields struct {
	CompanyName string `json:"companyName" validate:"required,max=40"`
	Phone       string `json:"phone" validate:"max=24"`
}

func (f ShipperFields) toModel(id int64) model.Shipper {
	return model.Shipper{ID: id, CompanyName: f.CompanyName, Phone: f.Phone}
}

type ShipperIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *ShipperIDRequest) Validate() error { return validate.Struct(r) }

type CreateShipperRequest struct {
	ShipperFields
}

func (r *CreateShipperRequest) Validate() error { return validate.Struct(r) }

type UpdateShipperRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	ShipperFields
}

func (r *UpdateShipperRequest) Validate() error { return validate.Struct(r) }

// ---- products ----

type ProductFields struct {
	ProductName     string  `json:"productName" validate:"required,max=40"`
	SupplierID      int64   `json:"supplierId" validate:"gte=0"`
	CategoryID      int64   `json:"categoryId" validate:"gte=0"`
	QuantityPerUnit string  `json:"quantityPerUnit" validate:"max=20"`
	UnitPrice       float64 `json:"unitPrice" validate:"gte=0"`
	UnitsInStock    int     `json:"unitsInStock" validate:"gte=0"`
	UnitsOnOrder    int     `json:"unitsOnOrder" validate:"gte=0"`
	ReorderLevel    int     `json:"reorderLevel" validate:"gte=0"`
	Discontinued    bool    `json:"discontinued"`
}

func (f ProductFields) toModel(id int64) model.Product {
	return model.Product{
		ID:              id,
		ProductName:     f.ProductName,
		SupplierID:      f.SupplierID,
		CategoryID:      f.CategoryID,
		QuantityPerUnit: f.QuantityPerUnit,
		UnitPrice:       f.UnitPrice,
		UnitsInStock:    f.UnitsInStock,
		UnitsOnOrder:    f.UnitsOnOrder,
		ReorderLevel:    f.ReorderLevel,
		Discontinued:    f.Discontinued,
	}
}

type ProductIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *ProductIDRequest) Validate() error { return validate.Struct(r) }

type CreateProductRequest struct {
	ProductFields
}

func (r *CreateProductRequest) Validate() error { return validate.Struct(r) }

type UpdateProductRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	ProductFields
}

func (r *UpdateProductRequest) Validate() error { return validate.Struct(r) }
