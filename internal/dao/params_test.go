package dao

import (
	"errors"
	"reflect"
	"testing"
)

func TestParams_OrderFollowsDescriptor(t *testing.T) {
	p := NewParams(itemDescriptor)

	// Bound out of order on purpose.
	p.Bool("active", true)
	p.Int("stock", 3)
	p.Text("name", "washer")
	p.Float("price", 0.25)

	if err := p.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	want := []any{"washer", 0.25, int64(3), true}
	if got := p.Args(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Args() = %#v, want %#v", got, want)
	}
}

func TestParams_Errors(t *testing.T) {
	tests := []struct {
		name string
		bind func(p *Params)
		want error
	}{
		{
			name: "setter disagrees with declared type",
			bind: func(p *Params) { p.Text("stock", "3") },
			want: ErrTypeMismatch,
		},
		{
			name: "unknown column",
			bind: func(p *Params) { p.Text("colour", "red") },
			want: ErrUnknownColumn,
		},
		{
			name: "identifier is bound by the engine",
			bind: func(p *Params) { p.Int64("item_id", 9) },
			want: ErrUnknownColumn,
		},
		{
			name: "column left unset",
			bind: func(p *Params) {
				p.Text("name", "washer")
				p.Float("price", 1)
				p.Int("stock", 1)
			},
			want: ErrMissingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(itemDescriptor)
			tt.bind(p)
			if err := p.Err(); !errors.Is(err, tt.want) {
				t.Fatalf("Err() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParams_Null(t *testing.T) {
	p := NewParams(itemDescriptor)
	p.Text("name", "washer")
	p.Null("price")
	p.Int("stock", 0)
	p.Bool("active", false)

	if err := p.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if got := p.Args()[1]; got != nil {
		t.Fatalf("price = %v, want nil", got)
	}
}
