package json

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/viant/keycase"
	ftime "github.com/viant/keycase/format/time"
)

var nullJSON = gojay.EmbeddedJSON("null")

// encoder keeps the first scalar error, gojay marshaler callbacks cannot return errors
type encoder struct {
	timeLayout string
	err        error
}

type objectEncoder struct {
	*encoder
	mapping *keycase.Mapping
}

// MarshalJSONObject encodes mapping entries in insertion order
func (o objectEncoder) MarshalJSONObject(enc *gojay.Encoder) {
	o.mapping.Range(func(key string, value keycase.Node) bool {
		switch actual := value.(type) {
		case *keycase.Mapping:
			if actual != nil {
				enc.AddObjectKey(key, objectEncoder{encoder: o.encoder, mapping: actual})
				return true
			}
		case keycase.Array:
			if actual != nil {
				enc.AddArrayKey(key, arrayEncoder{encoder: o.encoder, items: actual})
				return true
			}
		}
		raw := o.scalar(value)
		enc.AddEmbeddedJSONKey(key, &raw)
		return o.err == nil
	})
}

// IsNil returns false, an empty mapping encodes as {}
func (o objectEncoder) IsNil() bool {
	return false
}

type arrayEncoder struct {
	*encoder
	items keycase.Array
}

// MarshalJSONArray encodes array items
func (a arrayEncoder) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a.items {
		switch actual := item.(type) {
		case *keycase.Mapping:
			if actual != nil {
				enc.AddObject(objectEncoder{encoder: a.encoder, mapping: actual})
				continue
			}
		case keycase.Array:
			if actual != nil {
				enc.AddArray(arrayEncoder{encoder: a.encoder, items: actual})
				continue
			}
		}
		raw := a.scalar(item)
		enc.AddEmbeddedJSON(&raw)
		if a.err != nil {
			return
		}
	}
}

// IsNil returns false, an empty array encodes as []
func (a arrayEncoder) IsNil() bool {
	return false
}

func (e *encoder) scalar(n keycase.Node) gojay.EmbeddedJSON {
	scalar, ok := n.(keycase.Scalar)
	if !ok {
		return nullJSON
	}
	data, err := e.marshalScalar(scalar.Value)
	if err != nil {
		if e.err == nil {
			e.err = err
		}
		return nullJSON
	}
	return data
}

func (e *encoder) marshalScalar(value interface{}) (gojay.EmbeddedJSON, error) {
	switch actual := value.(type) {
	case nil:
		return nullJSON, nil
	case time.Time:
		return quote(ftime.Format(actual, e.timeLayout))
	case *time.Time:
		if actual == nil {
			return nullJSON, nil
		}
		return quote(ftime.Format(*actual, e.timeLayout))
	case Number:
		if !isNumberLiteral(string(actual)) {
			return nil, fmt.Errorf("%w: invalid number %q", ErrUnsupportedScalar, actual)
		}
		return gojay.EmbeddedJSON(actual), nil
	case string:
		return quote(actual)
	case bool:
		return gojay.EmbeddedJSON(strconv.FormatBool(actual)), nil
	case int:
		return gojay.EmbeddedJSON(strconv.FormatInt(int64(actual), 10)), nil
	case int8:
		return gojay.EmbeddedJSON(strconv.FormatInt(int64(actual), 10)), nil
	case int16:
		return gojay.EmbeddedJSON(strconv.FormatInt(int64(actual), 10)), nil
	case int32:
		return gojay.EmbeddedJSON(strconv.FormatInt(int64(actual), 10)), nil
	case int64:
		return gojay.EmbeddedJSON(strconv.FormatInt(actual, 10)), nil
	case uint:
		return gojay.EmbeddedJSON(strconv.FormatUint(uint64(actual), 10)), nil
	case uint8:
		return gojay.EmbeddedJSON(strconv.FormatUint(uint64(actual), 10)), nil
	case uint16:
		return gojay.EmbeddedJSON(strconv.FormatUint(uint64(actual), 10)), nil
	case uint32:
		return gojay.EmbeddedJSON(strconv.FormatUint(uint64(actual), 10)), nil
	case uint64:
		return gojay.EmbeddedJSON(strconv.FormatUint(actual, 10)), nil
	case float32:
		return formatFloat(float64(actual), 32)
	case float64:
		return formatFloat(actual, 64)
	case []byte:
		return quote(base64.StdEncoding.EncodeToString(actual))
	case encoding.TextMarshaler:
		text, err := actual.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %v", ErrUnsupportedScalar, value, err)
		}
		return quote(string(text))
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedScalar, value)
}

func formatFloat(value float64, bitSize int) (gojay.EmbeddedJSON, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedScalar, value)
	}
	return gojay.EmbeddedJSON(strconv.FormatFloat(value, 'g', -1, bitSize)), nil
}

func quote(value string) (gojay.EmbeddedJSON, error) {
	data, err := gojay.Marshal(value)
	if err != nil {
		return nil, err
	}
	return data, nil
}
