package dao

import (
	"errors"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

var itemDescriptor = MustDescriptor("items", Integer("item_id"), StoreAssigned,
	Text("name"), Float("price"), Integer("stock"), Bool("active"))

func TestRecord_Getters(t *testing.T) {
	r := NewRecord(itemDescriptor, []any{int32(7), "bolt", float32(1.5), int16(40), true})

	if got := r.Int64("item_id"); got != 7 {
		t.Errorf("item_id = %d", got)
	}
	if got := r.Text("name"); got != "bolt" {
		t.Errorf("name = %q", got)
	}
	if got := r.Float("price"); got != 1.5 {
		t.Errorf("price = %v", got)
	}
	if got := r.Int("stock"); got != 40 {
		t.Errorf("stock = %d", got)
	}
	if got := r.Bool("active"); !got {
		t.Errorf("active = %v", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecord_NullReadsZero(t *testing.T) {
	r := NewRecord(itemDescriptor, []any{int64(1), nil, nil, nil, nil})

	if r.Text("name") != "" || r.Float("price") != 0 || r.Int("stock") != 0 || r.Bool("active") {
		t.Fatal("expected zero values for NULL")
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecord_Numeric(t *testing.T) {
	price := pgtype.Numeric{Int: big.NewInt(1825), Exp: -2, Valid: true}
	r := NewRecord(itemDescriptor, []any{int64(1), "nut", price, int64(0), false})

	if got := r.Float("price"); got != 18.25 {
		t.Fatalf("price = %v, want 18.25", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		read func(r *Record)
		want error
	}{
		{name: "getter disagrees with declared type", read: func(r *Record) { r.Text("price") }, want: ErrTypeMismatch},
		{name: "stored value has wrong type", read: func(r *Record) { r.Bool("name") }, want: ErrTypeMismatch},
		{name: "unknown column", read: func(r *Record) { r.Text("colour") }, want: ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(itemDescriptor, []any{int64(1), "bolt", 1.0, int64(2), true})
			tt.read(r)
			if !errors.Is(r.Err(), tt.want) {
				t.Fatalf("Err() = %v, want %v", r.Err(), tt.want)
			}
		})
	}
}

func TestRecord_StoredValueMismatch(t *testing.T) {
	r := NewRecord(itemDescriptor, []any{int64(1), 12, 1.0, "many", true})

	_ = r.Text("name")
	if !errors.Is(r.Err(), ErrTypeMismatch) {
		t.Fatalf("expected mismatch reading an int as text, got %v", r.Err())
	}

	// Only the first error is kept.
	_ = r.Int("stock")
	if got := r.Err().Error(); got == "" {
		t.Fatal("expected error text")
	}
}

func TestRecord_WrongWidth(t *testing.T) {
	r := NewRecord(itemDescriptor, []any{int64(1)})
	if !errors.Is(r.Err(), ErrTypeMismatch) {
		t.Fatalf("expected width mismatch, got %v", r.Err())
	}
}
