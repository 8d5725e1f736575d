package json

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/keycase"
)

func TestCamelCase(t *testing.T) {
	var useCases = []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "activity payload",
			input:       `{"activity_name":"chess","activity_schedules":[{"start_time":"09:00","end_time":"10:00"}],"max_capacity":25,"venue":null}`,
			expect:      `{"activityName":"chess","activitySchedules":[{"startTime":"09:00","endTime":"10:00"}],"maxCapacity":25,"venue":null}`,
		},
		{
			description: "document key order",
			input:       `{"z_b":1,"a_c":2,"m_d":3}`,
			expect:      `{"zB":1,"aC":2,"mD":3}`,
		},
		{
			description: "whitespace",
			input:       " { \"user_id\" : 1 ,\n \"is_admin\" : false } ",
			expect:      `{"userId":1,"isAdmin":false}`,
		},
		{
			description: "string value not rewritten",
			input:       `{"key_name":"value_name"}`,
			expect:      `{"keyName":"value_name"}`,
		},
		{
			description: "top level array",
			input:       `[{"a_b":1},[{"c_d":2}],"e_f",null]`,
			expect:      `[{"aB":1},[{"cD":2}],"e_f",null]`,
		},
		{
			description: "big number literal",
			input:       `{"student_id":12345678901234567890,"ratio":-1.5e-3}`,
			expect:      `{"studentId":12345678901234567890,"ratio":-1.5e-3}`,
		},
		{
			description: "top level string",
			input:       `"abc_def"`,
			expect:      `"abc_def"`,
		},
		{
			description: "top level number",
			input:       `42`,
			expect:      `42`,
		},
		{
			description: "top level null",
			input:       `null`,
			expect:      `null`,
		},
		{
			description: "empty object",
			input:       `{}`,
			expect:      `{}`,
		},
		{
			description: "empty array",
			input:       `[]`,
			expect:      `[]`,
		},
		{
			description: "duplicate keys keep last value",
			input:       `{"a_b":1,"c":2,"a_b":3}`,
			expect:      `{"aB":3,"c":2}`,
		},
	}

	for _, useCase := range useCases {
		actual, err := CamelCase([]byte(useCase.input))
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.expect, string(actual), useCase.description)
	}
}

func TestSnakeCase(t *testing.T) {
	var useCases = []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "request payload",
			input:       `{"activityId":7,"studentCode":"s1","joinedAt":"2024-01-01"}`,
			expect:      `{"activity_id":7,"student_code":"s1","joined_at":"2024-01-01"}`,
		},
		{
			description: "upper case run",
			input:       `{"userID":1}`,
			expect:      `{"user_i_d":1}`,
		},
	}

	for _, useCase := range useCases {
		actual, err := SnakeCase([]byte(useCase.input))
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.expect, string(actual), useCase.description)
	}
}

func TestUnmarshal(t *testing.T) {
	var useCases = []struct {
		description string
		input       string
		options     []Option
		expect      keycase.Node
		expectErr   error
	}{
		{
			description: "value types",
			input:       `{"a":"x","b":true,"c":1.5,"d":null,"e":[1]}`,
			expect: keycase.MappingOf(
				keycase.Entry{Key: "a", Value: keycase.Scalar{Value: "x"}},
				keycase.Entry{Key: "b", Value: keycase.Scalar{Value: true}},
				keycase.Entry{Key: "c", Value: keycase.Scalar{Value: Number("1.5")}},
				keycase.Entry{Key: "d", Value: keycase.Null{}},
				keycase.Entry{Key: "e", Value: keycase.Array{keycase.Scalar{Value: Number("1")}}},
			),
		},
		{
			description: "coerce numbers",
			input:       `[1.5,2]`,
			options:     []Option{WithNumberPolicy(CoerceNumbers)},
			expect:      keycase.Array{keycase.Scalar{Value: 1.5}, keycase.Scalar{Value: 2.0}},
		},
		{
			description: "escaped string",
			input:       `"a\"b\n"`,
			expect:      keycase.Scalar{Value: "a\"b\n"},
		},
		{
			description: "duplicate key error",
			input:       `{"a":1,"a":2}`,
			options:     []Option{WithDuplicateKeyPolicy(ErrorOnDuplicate)},
			expectErr:   ErrDuplicateKey,
		},
		{
			description: "nested duplicate key error",
			input:       `{"list":[{"a":1,"a":2}]}`,
			options:     []Option{WithDuplicateKeyPolicy(ErrorOnDuplicate)},
			expectErr:   ErrDuplicateKey,
		},
		{description: "empty input", input: ``, expectErr: ErrInvalidJSON},
		{description: "blank input", input: "  \n", expectErr: ErrInvalidJSON},
		{description: "missing value", input: `{"a":}`, expectErr: ErrInvalidJSON},
		{description: "bad literal", input: `nul`, expectErr: ErrInvalidJSON},
		{description: "leading zero", input: `01`, expectErr: ErrInvalidJSON},
		{description: "bare minus", input: `-`, expectErr: ErrInvalidJSON},
		{description: "word", input: `abc`, expectErr: ErrInvalidJSON},
		{description: "nested bad number", input: `{"a":[1.]}`, expectErr: ErrInvalidJSON},
		{description: "concatenated documents", input: `{"a":1}{"b":2}`, expectErr: ErrInvalidJSON},
		{description: "trailing data", input: `{"a":1} xyz`, expectErr: ErrInvalidJSON},
		{description: "extra closing brace", input: `{"a":1}}`, expectErr: ErrInvalidJSON},
		{description: "trailing comma", input: `[1,]`, expectErr: ErrInvalidJSON},
		{description: "leading comma", input: `[,1]`, expectErr: ErrInvalidJSON},
		{description: "unterminated object", input: `{"a":{}`, expectErr: ErrInvalidJSON},
		{description: "unterminated string", input: `{"a":"b`, expectErr: ErrInvalidJSON},
		{description: "nested missing value", input: `[{"a":[{"b":}]}]`, expectErr: ErrInvalidJSON},
	}

	for _, useCase := range useCases {
		actual, err := Unmarshal([]byte(useCase.input), useCase.options...)
		if useCase.expectErr != nil {
			assert.True(t, errors.Is(err, useCase.expectErr), useCase.description+": %v", err)
			continue
		}
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.expect, actual, useCase.description)
	}
}

func TestMarshal(t *testing.T) {
	when := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	var nilMapping *keycase.Mapping

	var useCases = []struct {
		description string
		input       keycase.Node
		options     []Option
		expect      string
		expectErr   error
	}{
		{description: "undefined", input: nil, expect: `null`},
		{description: "nil mapping", input: nilMapping, expect: `null`},
		{description: "nil array", input: keycase.Array(nil), expect: `null`},
		{description: "escaped string", input: keycase.Scalar{Value: "a\"b"}, expect: `"a\"b"`},
		{
			description: "go scalars",
			input: keycase.Array{
				keycase.Scalar{Value: 1},
				keycase.Scalar{Value: int64(-2)},
				keycase.Scalar{Value: uint8(3)},
				keycase.Scalar{Value: 1.25},
				keycase.Scalar{Value: float32(0.5)},
				keycase.Scalar{Value: false},
				keycase.Scalar{Value: nil},
				nil,
			},
			expect: `[1,-2,3,1.25,0.5,false,null,null]`,
		},
		{
			description: "text marshaler and bytes",
			input: keycase.MappingOf(
				keycase.Entry{Key: "at", Value: keycase.Scalar{Value: when}},
				keycase.Entry{Key: "raw", Value: keycase.Scalar{Value: []byte("hi")}},
				keycase.Entry{Key: "none", Value: nil},
			),
			expect: `{"at":"2024-05-06T07:08:09Z","raw":"aGk=","none":null}`,
		},
		{
			description: "date format",
			input:       keycase.Array{keycase.Scalar{Value: when}, keycase.Scalar{Value: &when}},
			options:     []Option{WithDateFormat("yyyy-MM-dd")},
			expect:      `["2024-05-06","2024-05-06"]`,
		},
		{
			description: "time layout",
			input:       keycase.MappingOf(keycase.Entry{Key: "at", Value: keycase.Scalar{Value: when}}),
			options:     []Option{WithTimeLayout("15:04")},
			expect:      `{"at":"07:08"}`,
		},
		{description: "not a number", input: keycase.Scalar{Value: math.NaN()}, expectErr: ErrUnsupportedScalar},
		{description: "invalid number literal", input: keycase.Scalar{Value: Number("1x")}, expectErr: ErrUnsupportedScalar},
		{
			description: "unsupported nested scalar",
			input:       keycase.Array{keycase.MappingOf(keycase.Entry{Key: "a", Value: keycase.Scalar{Value: struct{}{}}})},
			expectErr:   ErrUnsupportedScalar,
		},
	}

	for _, useCase := range useCases {
		actual, err := Marshal(useCase.input, useCase.options...)
		if useCase.expectErr != nil {
			assert.True(t, errors.Is(err, useCase.expectErr), useCase.description)
			continue
		}
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.expect, string(actual), useCase.description)
	}
}

func TestMarshal_FromValue(t *testing.T) {
	type schedule struct {
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	type request struct {
		ActivityID int        `json:"activityID"`
		Schedules  []schedule `json:"schedules"`
	}
	n, err := keycase.FromValue(request{ActivityID: 3, Schedules: []schedule{{StartTime: "9", EndTime: "10"}}})
	assert.Nil(t, err)
	actual, err := Marshal(keycase.ToSnakeCase(n))
	assert.Nil(t, err)
	assert.EqualValues(t, `{"activity_i_d":3,"schedules":[{"start_time":"9","end_time":"10"}]}`, string(actual))
}

func TestInvalid(t *testing.T) {
	err := invalid(errors.New("wrong char '\x00' found at position 2"))
	assert.True(t, errors.Is(err, ErrInvalidJSON))
	assert.EqualValues(t, "invalid JSON: wrong char '' found at position 2", err.Error())

	err = checkNested([]byte(` `), 10)
	assert.True(t, errors.Is(err, ErrInvalidJSON))
	err = checkNested([]byte(`{"a":}`), 6)
	assert.True(t, errors.Is(err, ErrInvalidJSON))
	assert.Nil(t, checkNested([]byte(`{}`), 8))
}

func TestNumber(t *testing.T) {
	i, err := Number("42").Int64()
	assert.Nil(t, err)
	assert.EqualValues(t, 42, i)
	f, err := Number("1.5").Float64()
	assert.Nil(t, err)
	assert.EqualValues(t, 1.5, f)
	assert.EqualValues(t, "7", Number("7").String())
}
