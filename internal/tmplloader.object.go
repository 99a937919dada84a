package internal

import (
	"fmt"
	"reflect"
	"strconv"
)

// ToObject converts caller data into a string-keyed property bag so template
// code can use attribute access on it. Maps keep their entries (keys are
// formatted with fmt), slices and arrays are keyed by index, scalars are
// stored under ScalarKey and nil yields an empty bag.
//
// Structs, pointers and other reference values already support attribute
// access and are reported with ok=false, meaning the caller should keep the
// original value.
func ToObject(data any) (obj map[string]any, ok bool) {
	if data == nil {
		return map[string]any{}, true
	}

	if m, isMap := data.(map[string]any); isMap {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}

	if b, isBytes := data.([]byte); isBytes {
		return map[string]any{ScalarKey: string(b)}, true
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return out, true
	case reflect.Slice, reflect.Array:
		out := make(map[string]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[strconv.Itoa(i)] = v.Index(i).Interface()
		}
		return out, true
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return map[string]any{ScalarKey: data}, true
	default:
		return nil, false
	}
}
