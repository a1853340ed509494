package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// numericPrefix matches the longest leading number in a string:
// optional sign, digits with an optional fraction, optional exponent.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// IsEmpty reports whether a value is empty.
// nil, false, numeric zero, "", "0", and zero-length collections are empty.
// []byte follows the string rule.
// Everything else is not, including "0.0", "false", and NaN.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case bool:
		return !val
	case string:
		return val == "" || val == "0"
	case json.Number:
		return val == "" || val == "0"
	case []byte:
		return len(val) == 0 || string(val) == "0"
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	case reflect.String:
		return rv.String() == "" || rv.String() == "0"
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	default:
		return false
	}
}

// ToBool converts a value to a boolean.
// It is the negation of IsEmpty.
func ToBool(v any) bool {
	return !IsEmpty(v)
}

// ToInt converts a value to an int.
//
// Conversion table:
//   - nil: 0
//   - bool: 1 or 0
//   - integers: converted
//   - floats: truncated toward zero, 0 for NaN, Inf, or out of range
//   - string, []byte, json.Number: longest leading number, 0 if none
//   - slices, arrays, maps: 0 when empty, 1 otherwise
//   - anything else: 1
func ToInt(v any) int {
	if v == nil {
		return 0
	}
	switch val := v.(type) {
	case int:
		return val
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		return parseInt(val)
	case json.Number:
		return parseInt(string(val))
	case []byte:
		return parseInt(string(val))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return truncate(rv.Float())
	case reflect.String:
		return parseInt(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return 0
		}
		return 1
	case reflect.Slice, reflect.Map, reflect.Array:
		if rv.Len() == 0 {
			return 0
		}
		return 1
	default:
		return 1
	}
}

// ToFloat converts a value to a float64.
// It follows the ToInt table without truncating fractions.
func ToFloat(v any) float64 {
	if v == nil {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return val
	case string:
		return parseFloat(val)
	case json.Number:
		return parseFloat(string(val))
	case []byte:
		return parseFloat(string(val))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.String:
		return parseFloat(rv.String())
	default:
		return float64(ToInt(v))
	}
}

// ToString converts a value to a string.
//
// Conversion table:
//   - nil: ""
//   - bool: "1" or ""
//   - integers: decimal
//   - floats: integral values below 1e15 without a fraction, otherwise
//     the shortest representation; "NAN", "INF", "-INF" for special values
//   - string, []byte, json.Number: unchanged
//   - error: Error()
//   - fmt.Stringer: String()
//   - anything else: fmt.Sprint
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return string(val)
	case bool:
		if val {
			return "1"
		}
		return ""
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		if rv.Bool() {
			return "1"
		}
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ToSlice converts a value to a []any.
// nil becomes an empty slice, slices and arrays are copied element by
// element, and every other value is wrapped in a single-element slice.
// The result never shares backing storage with v.
func ToSlice(v any) []any {
	if v == nil {
		return []any{}
	}
	if s, ok := v.([]any); ok {
		if s == nil {
			return []any{}
		}
		return slices.Clone(s)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return []any{v}
	}
}

// ToMap converts a value to a map[string]any.
// Maps keyed by strings are converted, nil becomes an empty map.
// Returns false for anything else.
func ToMap(v any) (map[string]any, bool) {
	if v == nil {
		return map[string]any{}, true
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func parseInt(s string) int {
	prefix := numericPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return 0
	}
	if !strings.ContainsAny(prefix, ".eE") {
		if i, err := strconv.ParseInt(prefix, 10, 64); err == nil {
			return int(i)
		}
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return truncate(f)
}

func parseFloat(s string) float64 {
	prefix := numericPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return 0
	}
	// On overflow ParseFloat still returns ±Inf alongside the range error.
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}

func truncate(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Trunc(f)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0
	}
	return int(t)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
