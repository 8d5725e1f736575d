package visitor

import (
	"fmt"
	"go/token"
	"reflect"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/keycase/format/text"
	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *structInfo]()

type (
	structInfo struct {
		fields []*fieldInfo
	}

	fieldInfo struct {
		name      string
		omitEmpty bool
		field     *xunsafe.Field
		inline    *structInfo
	}
)

// StructVisitor implements Visitor[string, interface{}] for structs, keys are resolved field names.
type StructVisitor struct {
	ptr  unsafe.Pointer
	info *structInfo
}

// StructVisitorOf creates a StructVisitor from a struct or pointer to struct value.
// Field name resolution order: json tag name, format tag name (with its caseFormat), Go field name.
// Unexported fields and fields tagged json:"-" or format:"ignore" are skipped,
// omitempty skips zero values, embedded structs without explicit name are inlined.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected non nil pointer, got nil %T", value)
		}
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	info, err := lookupStructInfo(structType)
	if err != nil {
		return nil, err
	}
	visitor := &StructVisitor{
		ptr:  xunsafe.AsPointer(value),
		info: info,
	}
	return visitor.Visit, nil
}

// Visit iterates over struct fields, calling the provided function with each resolved field name and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	_, err := w.info.visit(w.ptr, f)
	return err
}

func (s *structInfo) visit(ptr unsafe.Pointer, f func(key string, element interface{}) (bool, error)) (bool, error) {
	for _, field := range s.fields {
		if field.inline != nil {
			continueVisit, err := field.inline.visit(field.field.Pointer(ptr), f)
			if err != nil || !continueVisit {
				return continueVisit, err
			}
			continue
		}
		fieldValue := field.field.Value(ptr)
		if field.omitEmpty && isZero(fieldValue) {
			continue
		}
		continueVisit, err := f(field.name, fieldValue)
		if err != nil {
			return false, err
		}
		if !continueVisit {
			return false, nil
		}
	}
	return true, nil
}

func lookupStructInfo(structType reflect.Type) (*structInfo, error) {
	if info, ok := structCache.Get(structType); ok {
		return info, nil
	}
	xStruct := xunsafe.NewStruct(structType)
	info := &structInfo{}
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		field, inline, err := newFieldInfo(xField)
		if err != nil {
			return nil, fmt.Errorf("%v.%v: %w", structType.Name(), xField.Name, err)
		}
		if field == nil {
			continue
		}
		if inline && xField.Type.Kind() == reflect.Struct {
			if field.inline, err = lookupStructInfo(xField.Type); err != nil {
				return nil, err
			}
		}
		info.fields = append(info.fields, field)
	}
	return structCache.LoadOrStore(structType, info), nil
}

// newFieldInfo returns nil for skipped fields, inline reports an embedded or format:"inline=true" field without explicit name
func newFieldInfo(xField *xunsafe.Field) (*fieldInfo, bool, error) {
	isStruct := xField.Type.Kind() == reflect.Struct
	if !token.IsExported(xField.Name) && !(xField.Anonymous && isStruct) {
		return nil, false, nil
	}
	jsonTag := parseJSONTag(xField.Name, xField.Tag.Get("json"))
	if jsonTag.Transient {
		return nil, false, nil
	}
	ret := &fieldInfo{name: jsonTag.Name, omitEmpty: jsonTag.OmitEmpty, field: xField}
	explicit := jsonTag.Explicit
	inline := xField.Anonymous
	formatTag, err := format.Parse(xField.Tag)
	if err != nil {
		return nil, false, fmt.Errorf("invalid format tag: %w", err)
	}
	if formatTag != nil {
		if formatTag.Ignore {
			return nil, false, nil
		}
		ret.omitEmpty = ret.omitEmpty || formatTag.Omitempty
		inline = inline || formatTag.Inline
		if !explicit {
			if formatTag.Name != "" {
				ret.name = formatTag.Name
				explicit = true
			}
			if caseFormat := text.NewCaseFormat(formatTag.CaseFormat); caseFormat.IsDefined() {
				ret.name = text.DetectCaseFormat(ret.name).Format(ret.name, caseFormat)
			}
		}
	}
	return ret, inline && !explicit, nil
}

func isZero(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}
