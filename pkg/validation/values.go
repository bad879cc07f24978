package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"unicode/utf16"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// resolve unwraps the stored shape of structured kinds into the scalar the
// constraints inspect: slugs become their `current` string, images their
// asset reference. The boolean is false when the value is absent or empty.
func resolve(kind schema.FieldKind, value any) (any, bool) {
	switch kind {
	case schema.KindSlug:
		value = slugValue(value)
	case schema.KindImageReference:
		value = imageRef(value)
	}
	return value, !isEmpty(value)
}

func slugValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if current, ok := v["current"]; ok {
			return current
		}
		return nil
	case map[string]string:
		if current, ok := v["current"]; ok {
			return current
		}
		return nil
	default:
		return value
	}
}

func imageRef(value any) any {
	switch v := value.(type) {
	case map[string]any:
		asset, ok := v["asset"]
		if !ok {
			return nil
		}
		switch a := asset.(type) {
		case map[string]any:
			return a["_ref"]
		case map[string]string:
			return a["_ref"]
		case string:
			return a
		default:
			return nil
		}
	default:
		return value
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// TextLength counts UTF-16 code units, the unit editors use when they report
// string length. It equals the rune count outside the supplementary planes.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		units := utf16.RuneLen(r)
		if units < 0 {
			units = 1
		}
		n += units
	}
	return n
}

// measure returns the length of text (UTF-16 units) or of a list (elements).
func measure(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return TextLength(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// number converts decoded JSON/YAML numerics into a finite float64.
func number(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
