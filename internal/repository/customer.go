package repository

import (
	"github.com/deppfellow/northwind/internal/dao"
	"github.com/deppfellow/northwind/internal/model"
)

// CustomerTable describes customers, keyed by a caller-assigned text id.
var CustomerTable = dao.Table[model.Customer, string]{
	Descriptor: dao.MustDescriptor("customers",
		dao.Text("customer_id"), dao.CallerAssigned,
		dao.Text("company_name"),
		dao.Text("contact_name"),
		dao.Text("contact_title"),
		dao.Text("address"),
		dao.Text("city"),
		dao.Text("region"),
		dao.Text("postal_code"),
		dao.Text("country"),
		dao.Text("phone"),
		dao.Text("fax"),
	),
	Map:  mapCustomer,
	Bind: bindCustomer,
	ID:   func(c model.Customer) string { return c.ID },
}

func mapCustomer(r *dao.Record) model.Customer {
	return model.Customer{
		ID:           r.Text("customer_id"),
		CompanyName:  r.Text("company_name"),
		ContactName:  r.Text("contact_name"),
		ContactTitle: r.Text("contact_title"),
		Address:      r.Text("address"),
		City:         r.Text("city"),
		Region:       r.Text("region"),
		PostalCode:   r.Text("postal_code"),
		Country:      r.Text("country"),
		Phone:        r.Text("phone"),
		Fax:          r.Text("fax"),
	}
}

func bindCustomer(c model.Customer, p *dao.Params) {
	p.Text("company_name", c.CompanyName)
	p.Text("contact_name", c.ContactName)
	p.Text("contact_title", c.ContactTitle)
	p.Text("address", c.Address)
	p.Text("city", c.City)
	p.Text("region", c.Region)
	p.Text("postal_code", c.PostalCode)
	p.Text("country", c.Country)
	p.Text("phone", c.Phone)
	p.Text("fax", c.Fax)
}
