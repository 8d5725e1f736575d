package keycase

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/keycase/visitor"
)

var (
	// ErrUnsupportedKey reports a map with non string keys
	ErrUnsupportedKey = visitor.ErrUnsupportedKey
	// ErrUnsupportedValue reports a value that cannot be represented as a node, i.e. a cyclic graph
	ErrUnsupportedValue = errors.New("unsupported value")
)

// FromValue converts a Go value to a node.
// Maps become mappings with sorted keys, structs become mappings in field order,
// slices and arrays (except []byte) become arrays, nil pointers, maps and slices become Null.
// Text marshalers (i.e. time.Time) and everything else become scalars.
// A map, slice or pointer reachable from itself returns ErrUnsupportedValue.
func FromValue(value interface{}) (Node, error) {
	c := &converter{}
	return c.fromValue(value)
}

// MustFromValue converts a Go value to a node, it panics on error
func MustFromValue(value interface{}) Node {
	ret, err := FromValue(value)
	if err != nil {
		panic(err)
	}
	return ret
}

type visitKey struct {
	ptr       uintptr
	len       int
	valueType reflect.Type
}

// converter tracks maps, slices and pointers on the current path
type converter struct {
	visiting map[visitKey]bool
}

func (c *converter) enter(rValue reflect.Value) (func(), error) {
	key := visitKey{ptr: rValue.Pointer(), valueType: rValue.Type()}
	if rValue.Kind() == reflect.Slice {
		key.len = rValue.Len()
	}
	if c.visiting == nil {
		c.visiting = make(map[visitKey]bool)
	}
	if c.visiting[key] {
		return nil, fmt.Errorf("%w: encountered a cycle via %s", ErrUnsupportedValue, rValue.Type())
	}
	c.visiting[key] = true
	return func() { delete(c.visiting, key) }, nil
}

func (c *converter) fromValue(value interface{}) (Node, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case Node:
		return actual, nil
	case []byte:
		if actual == nil {
			return Null{}, nil
		}
		return Scalar{Value: actual}, nil
	case encoding.TextMarshaler:
		if rValue := reflect.ValueOf(actual); rValue.Kind() == reflect.Ptr && rValue.IsNil() {
			return Null{}, nil
		}
		return Scalar{Value: actual}, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() {
			return Null{}, nil
		}
		leave, err := c.enter(rValue)
		if err != nil {
			return nil, err
		}
		defer leave()
		if rValue.Elem().Kind() == reflect.Struct {
			return c.fromStruct(value)
		}
		return c.fromValue(rValue.Elem().Interface())
	case reflect.Struct:
		return c.fromStruct(value)
	case reflect.Map:
		if rValue.IsNil() {
			return Null{}, nil
		}
		leave, err := c.enter(rValue)
		if err != nil {
			return nil, err
		}
		defer leave()
		return c.fromMap(value)
	case reflect.Slice:
		if rValue.IsNil() {
			return Null{}, nil
		}
		leave, err := c.enter(rValue)
		if err != nil {
			return nil, err
		}
		defer leave()
		return c.fromSlice(value)
	case reflect.Array:
		return c.fromSlice(value)
	}
	return Scalar{Value: value}, nil
}

func (c *converter) fromSlice(value interface{}) (Node, error) {
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil, err
	}
	ret := make(Array, 0, reflect.ValueOf(value).Len())
	err = visit(func(index int, element any) (bool, error) {
		item, err := c.fromValue(element)
		if err != nil {
			return false, fmt.Errorf("[%d]: %w", index, err)
		}
		ret = append(ret, item)
		return true, nil
	})
	return ret, err
}

func (c *converter) fromMap(value interface{}) (Node, error) {
	visit, err := visitor.SortedMapVisitorOf(value)
	if err != nil {
		return nil, err
	}
	ret := NewMapping(reflect.ValueOf(value).Len())
	err = visit(func(key string, element any) (bool, error) {
		item, err := c.fromValue(element)
		if err != nil {
			return false, fmt.Errorf("%v: %w", key, err)
		}
		ret.Set(key, item)
		return true, nil
	})
	return ret, err
}

func (c *converter) fromStruct(value interface{}) (Node, error) {
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return nil, err
	}
	ret := NewMapping(0)
	err = visit(func(key string, element interface{}) (bool, error) {
		item, err := c.fromValue(element)
		if err != nil {
			return false, fmt.Errorf("%v: %w", key, err)
		}
		ret.Set(key, item)
		return true, nil
	})
	return ret, err
}

// ValueOf converts a node to plain Go value: nil, []interface{}, map[string]interface{} or the scalar value
func ValueOf(n Node) interface{} {
	switch actual := n.(type) {
	case nil, Null:
		return nil
	case Array:
		if actual == nil {
			return nil
		}
		ret := make([]interface{}, len(actual))
		for i, item := range actual {
			ret[i] = ValueOf(item)
		}
		return ret
	case *Mapping:
		if actual == nil {
			return nil
		}
		ret := make(map[string]interface{}, actual.Len())
		for _, entry := range actual.entries {
			ret[entry.Key] = ValueOf(entry.Value)
		}
		return ret
	case Scalar:
		return actual.Value
	}
	return nil
}

// CamelCaseValue rewrites snake_case keys of a Go value to camelCase, see ToCamelCase
func CamelCaseValue(value interface{}) (interface{}, error) {
	n, err := FromValue(value)
	if err != nil {
		return nil, err
	}
	return ValueOf(ToCamelCase(n)), nil
}

// SnakeCaseValue rewrites camelCase keys of a Go value to snake_case, see ToSnakeCase
func SnakeCaseValue(value interface{}) (interface{}, error) {
	n, err := FromValue(value)
	if err != nil {
		return nil, err
	}
	return ValueOf(ToSnakeCase(n)), nil
}
