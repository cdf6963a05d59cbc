package repository

import (
	"github.com/deppfellow/northwind/internal/dao"
	"github.com/deppfellow/northwind/internal/model"
)

// ShipperTable describes shippers, keyed by a serial id.
var ShipperTable = dao.Table[model.Shipper, int64]{
	Descriptor: dao.MustDescriptor("shippers",
		dao.Integer("shipper_id"), dao.StoreAssigned,
		dao.Text("company_name"),
		dao.Text("phone"),
	),
	Map: func(r *dao.Record) model.Shipper {
		return model.Shipper{
			ID:          r.Int64("shipper_id"),
			CompanyName: r.Text("company_name"),
			Phone:       r.Text("phone"),
		}
	},
	Bind: func(s model.Shipper, p *dao.Params) {
		p.Text("company_name", s.CompanyName)
		p.Text("phone", s.Phone)
	},
	ID:    func(s model.Shipper) int64 { return s.ID },
	SetID: func(s *model.Shipper, id int64) { s.ID = id },
}
