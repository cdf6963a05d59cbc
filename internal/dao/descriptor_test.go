package dao

import (
	"errors"
	"testing"
)

func TestNewDescriptor_CallerAssigned(t *testing.T) {
	d, err := NewDescriptor("customers", Text("customer_id"), CallerAssigned,
		Text("company_name"), Text("phone"))
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}

	tests := map[string]struct{ got, want string }{
		"select all": {d.SelectAllSQL(), `SELECT "customer_id", "company_name", "phone" FROM "customers" ORDER BY "customer_id"`},
		"select one": {d.SelectByIDSQL(), `SELECT "customer_id", "company_name", "phone" FROM "customers" WHERE "customer_id" = $1`},
		"insert":     {d.InsertSQL(), `INSERT INTO "customers" ("customer_id", "company_name", "phone") VALUES ($1, $2, $3)`},
		"update":     {d.UpdateSQL(), `UPDATE "customers" SET "company_name" = $1, "phone" = $2 WHERE "customer_id" = $3`},
		"delete":     {d.DeleteSQL(), `DELETE FROM "customers" WHERE "customer_id" = $1`},
		"count":      {d.CountSQL(), `SELECT COUNT(*) FROM "customers"`},
	}
	for name, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s:\n got  %s\n want %s", name, tt.got, tt.want)
		}
	}

	if cols := d.InsertColumns(); len(cols) != 3 || cols[0].Name != "customer_id" {
		t.Errorf("insert columns must start with the caller-assigned id, got %+v", cols)
	}
}

func TestNewDescriptor_StoreAssigned(t *testing.T) {
	d, err := NewDescriptor("shippers", Integer("shipper_id"), StoreAssigned,
		Text("company_name"), Text("phone"))
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}

	want := `INSERT INTO "shippers" ("company_name", "phone") VALUES ($1, $2) RETURNING "shipper_id"`
	if got := d.InsertSQL(); got != want {
		t.Errorf("insert:\n got  %s\n want %s", got, want)
	}

	for _, c := range d.InsertColumns() {
		if c.Name == "shipper_id" {
			t.Fatal("insert columns must never include a store-assigned id")
		}
	}

	sel := d.SelectColumns()
	if sel[0].Name != "shipper_id" {
		t.Fatalf("select columns must start with the id, got %+v", sel)
	}
}

func TestNewDescriptor_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		id       Column
		strategy IDStrategy
		values   []Column
	}{
		{name: "empty table", table: "", id: Text("id"), strategy: CallerAssigned, values: []Column{Text("a")}},
		{name: "zero strategy", table: "t", id: Text("id"), strategy: 0, values: []Column{Text("a")}},
		{name: "text store-assigned id", table: "t", id: Text("id"), strategy: StoreAssigned, values: []Column{Text("a")}},
		{name: "no value columns", table: "t", id: Text("id"), strategy: CallerAssigned},
		{name: "id repeated", table: "t", id: Text("id"), strategy: CallerAssigned, values: []Column{Text("id")}},
		{name: "duplicate value", table: "t", id: Text("id"), strategy: CallerAssigned, values: []Column{Text("a"), Integer("a")}},
		{name: "unnamed column", table: "t", id: Text("id"), strategy: CallerAssigned, values: []Column{Text("")}},
		{name: "bad type", table: "t", id: Text("id"), strategy: CallerAssigned, values: []Column{{Name: "a", Type: 42}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDescriptor(tt.table, tt.id, tt.strategy, tt.values...)
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
			}
		})
	}
}

func TestDescriptor_QuotesIdentifiers(t *testing.T) {
	d := MustDescriptor(`odd"table`, Text("id"), CallerAssigned, Text("v"))
	want := `DELETE FROM "odd""table" WHERE "id" = $1`
	if got := d.DeleteSQL(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMustDescriptor_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustDescriptor("", Text("id"), CallerAssigned, Text("v"))
}
