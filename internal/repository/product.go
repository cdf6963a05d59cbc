package repository

import (
	"github.com/deppfellow/northwind/internal/dao"
	"github.com/deppfellow/northwind/internal/model"
)

// ProductTable describes products, keyed by a serial id.
var ProductTable = dao.Table[model.Product, int64]{
	Descriptor: dao.MustDescriptor("products",
		dao.Integer("product_id"), dao.StoreAssigned,
		dao.Text("product_name"),
		dao.Integer("supplier_id"),
		dao.Integer("category_id"),
		dao.Text("quantity_per_unit"),
		dao.Float("unit_price"),
		dao.Integer("units_in_stock"),
		dao.Integer("units_on_order"),
		dao.Integer("reorder_level"),
		dao.Bool("discontinued"),
	),
	Map:   mapProduct,
	Bind:  bindProduct,
	ID:    func(p model.Product) int64 { return p.ID },
	SetID: func(p *model.Product, id int64) { p.ID = id },
}

func mapProduct(r *dao.Record) model.Product {
	return model.Product{
		ID:              r.Int64("product_id"),
		ProductName:     r.Text("product_name"),
		SupplierID:      r.Int64("supplier_id"),
		CategoryID:      r.Int64("category_id"),
		QuantityPerUnit: r.Text("quantity_per_unit"),
		UnitPrice:       r.Float("unit_price"),
		UnitsInStock:    r.Int("units_in_stock"),
		UnitsOnOrder:    r.Int("units_on_order"),
		ReorderLevel:    r.Int("reorder_level"),
		Discontinued:    r.Bool("discontinued"),
	}
}

func bindProduct(pr model.Product, p *dao.Params) {
	p.Text("product_name", pr.ProductName)
	p.Int64("supplier_id", pr.SupplierID)
	p.Int64("category_id", pr.CategoryID)
	p.Text("quantity_per_unit", pr.QuantityPerUnit)
	p.Float("unit_price", pr.UnitPrice)
	p.Int("units_in_stock", pr.UnitsInStock)
	p.Int("units_on_order", pr.UnitsOnOrder)
	p.Int("reorder_level", pr.ReorderLevel)
	p.Bool("discontinued", pr.Discontinued)
}
