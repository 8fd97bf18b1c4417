package fonts

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"

	ferrors "github.com/matzehuels/fontlink/pkg/errors"
)

// Attribute keys recognized by Decode. The CSS2 axis tags are accepted as
// aliases.
const (
	AttrName    = "name"
	AttrWeights = "weights"
	AttrItalics = "italics"
	AttrWght    = "wght"
	AttrItal    = "ital"
)

// Decode converts an untyped request, as produced by JSON, YAML or TOML
// decoders, into typed families.
//
// raw must be a list. Each entry is either a map with a "name" key plus
// optional "weights"/"italics" keys, or a list whose first element is the
// name and whose remaining elements are attribute maps:
//
//	[{"name": "Open Sans", "weights": [400, "100..900"]}]
//	[["Roboto", {"italics": [[0, 400], [1, 700]]}]]
//
// Decode validates shape only; the result still goes through Compile.
func Decode(raw any) ([]Family, error) {
	entries, ok := asList(raw)
	if !ok && raw != nil {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "expected a list of families, got %T", raw)
	}
	if len(entries) == 0 {
		return nil, ferrors.New(ferrors.ErrCodeEmptyInput, "at least one font family is required")
	}

	families := make([]Family, 0, len(entries))
	for i, entry := range entries {
		f, err := decodeEntry(i, entry)
		if err != nil {
			return nil, err
		}
		families = append(families, f)
	}
	return families, nil
}

func decodeEntry(idx int, entry any) (Family, error) {
	if m, ok := asMap(entry); ok {
		name, ok := m[AttrName]
		if !ok {
			return Family{}, ferrors.New(ferrors.ErrCodeInvalidName, "family %d: name is required", idx)
		}
		attrs := maps.Clone(m)
		delete(attrs, AttrName)
		return decodeFamily(idx, name, attrs)
	}

	if tuple, ok := asList(entry); ok {
		if len(tuple) == 0 {
			return Family{}, ferrors.New(ferrors.ErrCodeInvalidName, "family %d: name is required", idx)
		}
		attrs := make([]map[string]any, 0, len(tuple)-1)
		for _, el := range tuple[1:] {
			m, ok := asMap(el)
			if !ok {
				return Family{}, ferrors.New(ferrors.ErrCodeInvalidInput,
					"family %d: expected attribute map, got %T", idx, el)
			}
			attrs = append(attrs, m)
		}
		return decodeFamily(idx, tuple[0], attrs...)
	}

	return Family{}, ferrors.New(ferrors.ErrCodeInvalidInput,
		"family %d: expected map or list, got %T", idx, entry)
}

// decodeFamily applies each attribute map in order. Repeated weights or
// italics accumulate rather than replace one another.
func decodeFamily(idx int, rawName any, attrs ...map[string]any) (Family, error) {
	name, ok := rawName.(string)
	if !ok || name == "" {
		return Family{}, ferrors.New(ferrors.ErrCodeInvalidName, "family %d: name must be a non-empty string", idx)
	}

	f := Family{Name: name}
	for _, m := range attrs {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			switch key {
			case AttrWeights, AttrWght:
				ws, err := decodeWeights(name, m[key])
				if err != nil {
					return Family{}, err
				}
				f.Weights = append(f.Weights, ws...)
			case AttrItalics, AttrItal:
				ps, err := decodeItalics(name, m[key])
				if err != nil {
					return Family{}, err
				}
				f.Italics = append(f.Italics, ps...)
			default:
				return Family{}, ferrors.UnknownAttribute(key)
			}
		}
	}
	return f, nil
}

func decodeWeights(family string, v any) ([]Weight, error) {
	list, ok := asList(v)
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeInvalidWeight, "family %q: weights must be a list, got %T", family, v)
	}
	out := make([]Weight, 0, len(list))
	for i, el := range list {
		if s, ok := el.(string); ok {
			if s == "" {
				return nil, ferrors.New(ferrors.ErrCodeInvalidWeight, "family %q: weight %d is empty", family, i)
			}
			out = append(out, Weight(s))
			continue
		}
		n, ok := asInt(el)
		if !ok || n < 0 {
			return nil, ferrors.New(ferrors.ErrCodeInvalidWeight,
				"family %q: weight %d must be a non-negative integer or string, got %v", family, i, el)
		}
		out = append(out, WeightValue(n))
	}
	return out, nil
}

func decodeItalics(family string, v any) ([]ItalicPair, error) {
	list, ok := asList(v)
	if !ok {
		return nil, ferrors.New(ferrors.ErrCodeInvalidItalicPair, "family %q: italics must be a list, got %T", family, v)
	}
	out := make([]ItalicPair, 0, len(list))
	for i, el := range list {
		pair, ok := asList(el)
		if !ok || len(pair) != 2 {
			return nil, ferrors.New(ferrors.ErrCodeInvalidItalicPair,
				"family %q: italic %d must be an (ital, weight) pair, got %v", family, i, el)
		}
		ital, ok1 := asInt(pair[0])
		wght, ok2 := asInt(pair[1])
		if !ok1 || !ok2 || (ital != 0 && ital != 1) || wght < 0 {
			return nil, ferrors.New(ferrors.ErrCodeInvalidItalicPair,
				"family %q: italic %d must be an (ital, weight) integer pair, got %v", family, i, el)
		}
		out = append(out, ItalicPair{Ital: ital, Weight: wght})
	}
	return out, nil
}

// asList accepts any slice or array, including the []map[string]any that
// TOML produces for arrays of tables.
func asList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if l, ok := v.([]any); ok {
		return l, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is a string, not a list
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// asInt accepts any integer kind, integral float64 and json.Number. Every
// kind shares the int32 range so YAML, TOML and JSON decode alike.
func asInt(v any) (int, bool) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint:
		if uint64(x) > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	case uint64:
		if x > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || x > math.MaxInt32 || x < math.MinInt32 {
			return 0, false
		}
		n = int64(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}
