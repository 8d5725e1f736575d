package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatToTimeLayout(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "date", input: "yyyy-MM-dd", expect: "2006-01-02"},
		{description: "upper date", input: "YYYY-MM-DD", expect: "2006-01-02"},
		{description: "date time", input: "yyyy-MM-dd HH:mm:ss", expect: "2006-01-02 15:04:05"},
		{description: "millis", input: "yyyy-MM-ddThh:mm:ss.SSS", expect: "2006-01-02T15:04:05.000"},
		{description: "zone", input: "hh:mm+hh:mm", expect: "15:04Z07:00"},
		{description: "go layout", input: "2006-01-02", expect: "2006-01-02"},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, DateFormatToTimeLayout(testCase.input), testCase.description)
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2023, 1, 2, 1, 22, 19, 5, time.UTC)
	assert.EqualValues(t, "2023-01-02T01:22:19.000000005Z", Format(ts, ""))
	assert.EqualValues(t, "2023-01-02", Format(ts, DateFormatToTimeLayout("yyyy-MM-dd")))
}
