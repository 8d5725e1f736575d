// Package keycase rewrites mapping keys of nested JSON-like documents between snake_case and camelCase.
//
// A document is represented as a Node: nil (undefined), Null, Array, *Mapping or Scalar.
// Transformations return a new node of the same shape, mapping keys are rewritten at every depth,
// array elements and scalar values are never changed.
//
//	n := keycase.MappingOf(keycase.Entry{Key: "start_date", Value: keycase.NewScalar("2024-01-01")})
//	camel := keycase.ToCamelCase(n) // {"startDate": "2024-01-01"}
//
// Go values can be bridged with FromValue and ValueOf, JSON documents with the encoding/json subpackage.
package keycase
