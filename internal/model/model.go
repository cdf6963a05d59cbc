// Package model holds the Northwind entity value types.
//
// Entities are plain values with no behavior and no knowledge of storage;
// the repository package describes how each maps onto its table.
package model

// Customer is a row of customers. ID is chosen by the caller (e.g. "ALFKI").
type Customer struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Fax          string `json:"fax"`
}

// Shipper is a row of shippers. ID is assigned by the store on insert.
type Shipper struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	Phone       string `json:"phone"`
}

// Product is a row of products. ID is assigned by the store on insert.
type Product struct {
	ID              int64   `json:"id"`
	ProductName     string  `json:"productName"`
	SupplierID      int64   `json:"supplierId"`
	CategoryID      int64   `json:"categoryId"`
	QuantityPerUnit string  `json:"quantityPerUnit"`
	UnitPrice       float64 `json:"unitPrice"`
	UnitsInStock    int     `json:"unitsInStock"`
	UnitsOnOrder    int     `json:"unitsOnOrder"`
	ReorderLevel    int     `json:"reorderLevel"`
	Discontinued    bool    `json:"discontinued"`
}
