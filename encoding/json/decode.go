package json

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/francoispqt/gojay"
	"github.com/tidwall/gjson"
	"github.com/viant/keycase"
)

type decoder struct {
	options *Options
}

type objectDecoder struct {
	*decoder
	size    int
	mapping *keycase.Mapping
}

// UnmarshalJSONObject decodes object value for key
func (o *objectDecoder) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	if err := checkNested(raw, o.size); err != nil {
		return fmt.Errorf("%v: %w", key, err)
	}
	value, err := o.decode(raw)
	if err != nil {
		return fmt.Errorf("%v: %w", key, err)
	}
	if o.options.DuplicateKeyPolicy == ErrorOnDuplicate {
		if _, ok := o.mapping.Get(key); ok {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	o.mapping.Set(key, value)
	return nil
}

// NKeys returns 0 to decode every key
func (o *objectDecoder) NKeys() int {
	return 0
}

type arrayDecoder struct {
	*decoder
	size  int
	items keycase.Array
}

// UnmarshalJSONArray decodes array item
func (a *arrayDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	if err := checkNested(raw, a.size); err != nil {
		return fmt.Errorf("[%d]: %w", len(a.items), err)
	}
	value, err := a.decode(raw)
	if err != nil {
		return fmt.Errorf("[%d]: %w", len(a.items), err)
	}
	a.items = append(a.items, value)
	return nil
}

// validate rejects empty input, trailing data and malformed containers before decoding
func validate(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed document", ErrInvalidJSON)
	}
	return nil
}

// checkNested rejects an embedded value that is empty or not smaller than its container
func checkNested(raw []byte, size int) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing value", ErrInvalidJSON)
	}
	if len(raw) >= size {
		return fmt.Errorf("%w: malformed nested value", ErrInvalidJSON)
	}
	return nil
}

func (d *decoder) decode(data []byte) (keycase.Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}
	switch data[0] {
	case '{':
		object := &objectDecoder{decoder: d, size: len(data), mapping: keycase.NewMapping(0)}
		if err := gojay.UnmarshalJSONObject(data, object); err != nil {
			return nil, invalid(err)
		}
		return object.mapping, nil
	case '[':
		array := &arrayDecoder{decoder: d, size: len(data), items: keycase.Array{}}
		if err := gojay.UnmarshalJSONArray(data, array); err != nil {
			return nil, invalid(err)
		}
		return array.items, nil
	case '"':
		var value string
		if err := gojay.Unmarshal(data, &value); err != nil {
			return nil, invalid(err)
		}
		return keycase.Scalar{Value: value}, nil
	case 't', 'f':
		var value bool
		if err := gojay.Unmarshal(data, &value); err != nil {
			return nil, invalid(err)
		}
		return keycase.Scalar{Value: value}, nil
	case 'n':
		if string(data) != "null" {
			return nil, fmt.Errorf("%w: unexpected literal %q", ErrInvalidJSON, data)
		}
		return keycase.Null{}, nil
	}
	return d.number(string(data))
}

func (d *decoder) number(literal string) (keycase.Node, error) {
	if !isNumberLiteral(literal) {
		return nil, fmt.Errorf("%w: invalid number %q", ErrInvalidJSON, literal)
	}
	if d.options.NumberPolicy == CoerceNumbers {
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return keycase.Scalar{Value: value}, nil
	}
	return keycase.Scalar{Value: Number(literal)}, nil
}

// isNumberLiteral checks JSON number grammar: -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func isNumberLiteral(literal string) bool {
	i := 0
	if i < len(literal) && literal[i] == '-' {
		i++
	}
	switch {
	case i < len(literal) && literal[i] == '0':
		i++
	case i < len(literal) && literal[i] >= '1' && literal[i] <= '9':
		for i < len(literal) && isDigit(literal[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(literal) && literal[i] == '.' {
		i++
		if i == len(literal) || !isDigit(literal[i]) {
			return false
		}
		for i < len(literal) && isDigit(literal[i]) {
			i++
		}
	}
	if i < len(literal) && (literal[i] == 'e' || literal[i] == 'E') {
		i++
		if i < len(literal) && (literal[i] == '+' || literal[i] == '-') {
			i++
		}
		if i == len(literal) || !isDigit(literal[i]) {
			return false
		}
		for i < len(literal) && isDigit(literal[i]) {
			i++
		}
	}
	return i == len(literal)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func invalid(err error) error {
	if errors.Is(err, ErrInvalidJSON) || errors.Is(err, ErrDuplicateKey) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSON, printable(err.Error()))
}

// printable drops control characters, i.e. the NUL gojay reports past the end of input
func printable(message string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, message)
}
