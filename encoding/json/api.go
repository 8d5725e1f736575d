package json

import (
	"github.com/francoispqt/gojay"
	"github.com/viant/keycase"
)

// Unmarshal decodes JSON document into a node, object keys keep document order
func Unmarshal(data []byte, opts ...Option) (keycase.Node, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	d := &decoder{options: resolveOptions(opts)}
	return d.decode(data)
}

// Marshal encodes node as JSON, undefined and null nodes encode as null
func Marshal(n keycase.Node, opts ...Option) ([]byte, error) {
	state := &encoder{timeLayout: resolveOptions(opts).TimeLayout}
	var data []byte
	var err error
	switch actual := n.(type) {
	case *keycase.Mapping:
		if actual == nil {
			return []byte("null"), nil
		}
		data, err = gojay.MarshalJSONObject(objectEncoder{encoder: state, mapping: actual})
	case keycase.Array:
		if actual == nil {
			return []byte("null"), nil
		}
		data, err = gojay.MarshalJSONArray(arrayEncoder{encoder: state, items: actual})
	default:
		data = append([]byte(nil), state.scalar(n)...)
	}
	if state.err != nil {
		return nil, state.err
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Transcode decodes data, transforms the node with fn and encodes it back
func Transcode(data []byte, fn func(keycase.Node) keycase.Node, opts ...Option) ([]byte, error) {
	n, err := Unmarshal(data, opts...)
	if err != nil {
		return nil, err
	}
	return Marshal(fn(n), opts...)
}

// CamelCase rewrites snake_case keys of JSON document to camelCase
func CamelCase(data []byte, opts ...Option) ([]byte, error) {
	return Transcode(data, keycase.ToCamelCase, opts...)
}

// SnakeCase rewrites camelCase keys of JSON document to snake_case
func SnakeCase(data []byte, opts ...Option) ([]byte, error) {
	return Transcode(data, keycase.ToSnakeCase, opts...)
}
