package text

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCaseFormat(t *testing.T) {
	var testCases = []struct {
		names  []string
		expect CaseFormat
	}{
		{
			names: []string{
				"NAME",
				"EMP_ID",
			},
			expect: NewCaseFormat("uu"),
		},
		{
			names: []string{
				"eventTypeId",
				"event",
			},
			expect: NewCaseFormat("lc"),
		},
		{
			names: []string{
				"EVENT",
			},
			expect: NewCaseFormat("u"),
		},
		{
			names: []string{
				"event",
			},
			expect: NewCaseFormat("l"),
		},
		{
			names: []string{
				"This is sentence",
			},
			expect: NewCaseFormat("s"),
		},
		{
			names: []string{
				"This Is Title",
			},
			expect: NewCaseFormat("t"),
		},
		{
			names: []string{
				"activity_name",
				"start_date",
			},
			expect: CaseFormatLowerUnderscore,
		},
		{
			names:  nil,
			expect: CaseFormatLowerCamel,
		},
	}

	for i, testCase := range testCases {
		actual := DetectCaseFormat(testCase.names...)
		assert.EqualValues(t, testCase.expect, actual, fmt.Sprintf("detect (%v) ", i)+string(testCase.expect))
	}

}

func TestNewCaseFormat(t *testing.T) {
	var useCases = []struct {
		description string
		name        string
		expect      CaseFormat
		index       int
	}{
		{description: "canonical name", name: "lowerCamel", expect: CaseFormatLowerCamel, index: 4},
		{description: "short alias", name: "lu", expect: CaseFormatLowerUnderscore, index: 8},
		{description: "snake alias", name: "snake", expect: CaseFormatLowerUnderscore, index: 8},
		{description: "camel alias", name: "camel", expect: CaseFormatLowerCamel, index: 4},
		{description: "unknown", name: "kebab", expect: CaseFormatUndefined, index: 0},
	}
	for _, useCase := range useCases {
		actual := NewCaseFormat(useCase.name)
		assert.EqualValues(t, useCase.expect, actual, useCase.description)
		assert.EqualValues(t, useCase.index, CaseFormat(useCase.name).Index(), useCase.description)
		assert.EqualValues(t, useCase.index > 0, CaseFormat(useCase.name).IsDefined(), useCase.description)
	}
}
