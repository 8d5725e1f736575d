// Package json decodes JSON documents into keycase nodes and encodes them back.
//
// Unlike encoding/json with map[string]interface{}, object keys keep their document order,
// and numbers are kept as Number literals unless CoerceNumbers policy is used.
//
//	camel, err := json.CamelCase([]byte(`{"activity_name":"chess","start_date":"2024-01-01"}`))
//	// {"activityName":"chess","startDate":"2024-01-01"}
package json
