package visitor

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrUnsupportedKey reports a map whose keys are not strings
var ErrUnsupportedKey = errors.New("unsupported map key type")

// AnyMapVisitorOf dynamically creates a map visitor from any map value, iteration order is unspecified.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string, string](actual), nil
	case map[string]bool:
		return AnyTypedMapVisitorOf[string, bool](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[string, int](actual), nil
	case map[string]float64:
		return AnyTypedMapVisitorOf[string, float64](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns a visitor for a typed map
func AnyTypedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitor defines reflection backed map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	iter := v.data.MapRange()
	for iter.Next() {
		continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// SortedMapVisitorOf creates a visitor over a string keyed map (including named string key types)
// that visits keys in ascending order.
func SortedMapVisitorOf(value interface{}) (Visitor[string, any], error) {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKey, val.Type().Key())
	}
	visit, err := AnyMapVisitorOf(value)
	if err != nil {
		return nil, err
	}
	type entry struct {
		key   string
		value any
	}
	entries := make([]entry, 0, val.Len())
	if err = visit(func(key any, element any) (bool, error) {
		entries = append(entries, entry{key: reflect.ValueOf(key).String(), value: element})
		return true, nil
	}); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return func(f func(key string, element any) (bool, error)) error {
		for _, e := range entries {
			continueVisit, err := f(e.key, e.value)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}
