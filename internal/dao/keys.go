package dao

import (
	"errors"
	"fmt"
	"reflect"
)

// keyArg turns a key into the plain string or int64 handed to the driver,
// so named key types bind the same way their underlying types do.
func keyArg[K Key](id K) any {
	v := reflect.ValueOf(id)
	if v.Kind() == reflect.String {
		return v.String()
	}
	return v.Int()
}

// setKey stores a generated identifier returned by the driver into *dst.
func setKey[K Key](dst *K, raw any) error {
	v := reflect.ValueOf(dst).Elem()

	switch n := raw.(type) {
	case int64:
		return setInt(v, n)
	case int32:
		return setInt(v, int64(n))
	case int16:
		return setInt(v, int64(n))
	case int:
		return setInt(v, int64(n))
	case string:
		if v.Kind() != reflect.String {
			return fmt.Errorf("%w: generated key %T into %s", ErrTypeMismatch, raw, v.Type())
		}
		v.SetString(n)
		return nil
	default:
		return fmt.Errorf("%w: generated key %T into %s", ErrTypeMismatch, raw, v.Type())
	}
}

func setInt(v reflect.Value, n int64) error {
	if v.Kind() == reflect.String {
		return fmt.Errorf("%w: generated key int64 into %s", ErrTypeMismatch, v.Type())
	}
	if v.OverflowInt(n) {
		return fmt.Errorf("%w: generated key %d overflows %s", ErrTypeMismatch, n, v.Type())
	}
	v.SetInt(n)
	return nil
}

func isMappingErr(err error) bool {
	return errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrUnknownColumn) ||
		errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrMissingKey)
}
