package guard

import "reflect"

// isNil reports whether a value is nil, including typed nils hiding behind
// an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// valueLen returns the length of a string, slice, array, or map.
func valueLen(v any) (int, bool) {
	if isNil(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// toFloat coerces any numeric value to float64.
func toFloat(v any) (float64, bool) {
	if isNil(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toInt coerces any integral value to int64. Floats coerce only when they
// carry no fractional part.
func toInt(v any) (int64, bool) {
	f, ok := toFloat(v)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// argEquals compares a parsed rule argument against a field value, coercing
// numerics so that lt[18] and an int8 field agree.
func argEquals(a Arg, v any) bool {
	switch a.Kind() {
	case KindNull:
		return isNil(v)
	case KindBool:
		b, ok := v.(bool)
		want, _ := a.Bool()
		return ok && b == want
	case KindString:
		s, ok := v.(string)
		want, _ := a.Str()
		return ok && s == want
	case KindInt, KindFloat:
		f, ok := toFloat(v)
		want, _ := a.Float()
		return ok && f == want
	case KindList:
		items, _ := a.List()
		rv := reflect.ValueOf(v)
		if isNil(v) || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != len(items) {
			return false
		}
		for i, item := range items {
			if !argEquals(item, rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return false
}
