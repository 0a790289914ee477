package parts

import (
	"math"
	"reflect"
)

// Saturate returns a copy of ps in which every infinite number is clamped to
// ±math.MaxFloat64 and every NaN is zero. An overlong numeric literal parses
// to an infinity, which JSON cannot carry; Wrap and Tagged apply the same
// rule, so an encoded result decodes to exactly what Saturate returns.
func Saturate(ps []Part) []Part {
	if ps == nil {
		return nil
	}
	out := make([]Part, len(ps))
	for i, p := range ps {
		out[i] = saturatePart(p)
	}
	return out
}

func saturatePart(p Part) Part {
	if p == nil {
		return nil
	}
	return saturateValue(reflect.ValueOf(p)).Interface().(Part)
}

func saturateAny(value any) any {
	if value == nil {
		return nil
	}
	return saturateValue(reflect.ValueOf(value)).Interface()
}

// saturateValue returns a deep copy of v with non-finite floats replaced.
// Pointers are reallocated so the caller's value is never mutated.
func saturateValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Float64:
		return reflect.ValueOf(Finite(v.Float())).Convert(v.Type())
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(saturateValue(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(saturateValue(v.Elem()))
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(saturateValue(v.Index(i)))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := range v.NumField() {
			if field := out.Field(i); field.CanSet() {
				field.Set(saturateValue(v.Field(i)))
			}
		}
		return out
	default:
		return v
	}
}

// Finite applies the saturation rule to a single number.
func Finite(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	default:
		return f
	}
}
