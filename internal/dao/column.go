package dao

import (
	"reflect"
)

// ColumnType is the semantic type of a column. It decides which Record getter
// and which Params setter are legal for the column.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeInteger
	TypeFloat
	TypeBool
)

func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

func (t ColumnType) valid() bool {
	return t >= TypeText && t <= TypeBool
}

// accepts reports whether a Go value of rt may be bound to a column of type t.
func (t ColumnType) accepts(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.String:
		return t == TypeText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return t == TypeInteger
	case reflect.Float32, reflect.Float64:
		return t == TypeFloat
	case reflect.Bool:
		return t == TypeBool
	default:
		return false
	}
}

// Column names one column and its semantic type.
type Column struct {
	Name string
	Type ColumnType
}

// Text, Integer, Float and Bool are shorthands for building descriptors.
func Text(name string) Column    { return Column{Name: name, Type: TypeText} }
func Integer(name string) Column { return Column{Name: name, Type: TypeInteger} }
func Float(name string) Column   { return Column{Name: name, Type: TypeFloat} }
func Bool(name string) Column    { return Column{Name: name, Type: TypeBool} }
