package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CaseFormat defines key case format
type CaseFormat string

const (
	CaseFormatUndefined       CaseFormat = ""
	CaseFormatUpper           CaseFormat = "upper"
	CaseFormatLower           CaseFormat = "lower"
	CaseFormatUpperCamel      CaseFormat = "upperCamel"
	CaseFormatLowerCamel      CaseFormat = "lowerCamel"
	CaseFormatTitle           CaseFormat = "title"
	CaseFormatSentence        CaseFormat = "sentence"
	CaseFormatUpperUnderscore CaseFormat = "upperUnderscore"
	CaseFormatLowerUnderscore CaseFormat = "lowerUnderscore"
	CaseFormatDash            CaseFormat = "dash"
	CaseFormatLowerDash       CaseFormat = "lowerdash"
	CaseFormatUpperDash       CaseFormat = "upperdash"
)

var caseFormats = []CaseFormat{
	CaseFormatUndefined,
	CaseFormatUpper,
	CaseFormatLower,
	CaseFormatUpperCamel,
	CaseFormatLowerCamel,
	CaseFormatTitle,
	CaseFormatSentence,
	CaseFormatUpperUnderscore,
	CaseFormatLowerUnderscore,
	CaseFormatDash,
	CaseFormatLowerDash,
	CaseFormatUpperDash,
}

// IsDefined returns true if case format is defined
func (c CaseFormat) IsDefined() bool {
	return c.Index() > 0
}

// Format converts text from c to caseFormat
func (c CaseFormat) Format(text string, caseFormat CaseFormat) string {
	return c.To(caseFormat).Format(text)
}

// Index returns case format position, 0 for undefined; aliases resolve to their canonical format
func (c CaseFormat) Index() int {
	if i := c.index(); i > 0 {
		return i
	}
	if alias := NewCaseFormat(string(c)); alias != CaseFormatUndefined {
		return alias.index()
	}
	return 0
}

func (c CaseFormat) index() int {
	for i, candidate := range caseFormats {
		if candidate == c {
			return i
		}
	}
	return 0
}

// NewCaseFormat returns case format for a name or its short alias
func NewCaseFormat(name string) CaseFormat {
	switch strings.ToLower(name) {
	case "upper", "u":
		return CaseFormatUpper
	case "lower", "l":
		return CaseFormatLower
	case "dash", "d":
		return CaseFormatDash
	case "lowerdash", "ld":
		return CaseFormatLowerDash
	case "upperdash", "ud":
		return CaseFormatUpperDash
	case "lowercamel", "lc", "lowerpascal", "lp", "camel":
		return CaseFormatLowerCamel
	case "uppercamel", "uc", "upperpascal", "up", "pascal":
		return CaseFormatUpperCamel
	case "lowerunderscore", "lu", "lowersnake", "snake":
		return CaseFormatLowerUnderscore
	case "upperunderscore", "uu", "uppersnake":
		return CaseFormatUpperUnderscore
	case "title", "t", "start":
		return CaseFormatTitle
	case "sentence", "s":
		return CaseFormatSentence
	default:
		return CaseFormatUndefined
	}
}

// DetectCaseFormat guesses case format shared by supplied words, lowerCamel for no words
func DetectCaseFormat(words ...string) CaseFormat {
	if len(words) == 0 {
		return CaseFormatLowerCamel
	}
	var firstUpper bool
	upperCases := 0
	lowerCases := 0
	camels := 0
	separators := 0
	sep := ""

outer:
	for _, word := range words {
		var wasUpper *bool
		for i, r := range word {
			if unicode.IsLetter(r) {
				isUpper := unicode.IsUpper(r)
				if i == 0 && isUpper {
					firstUpper = true
				}
				if isUpper {
					upperCases++
				} else {
					lowerCases++
				}
				if wasUpper != nil && isUpper != *wasUpper {
					camels++
				}
				wasUpper = &isUpper
				continue
			}
			sep = string(r)
			if sep != " " || separators > 1 {
				break outer
			}
			separators++
			wasUpper = nil
		}
	}

	result := ""
	switch {
	case upperCases > 0 && lowerCases == 0:
		result = "u"
	case lowerCases > 0 && upperCases == 0:
		result = "l"
	case camels > 0:
		result = "l"
		if firstUpper {
			result = "u"
		}
	}

	switch sep {
	case " ":
		if firstUpper {
			result = "s"
		}
		if upperCases > 1 {
			result = "t"
		}
	case "-":
		result += "d"
	case "_":
		result += "u"
	case "":
		if camels > 0 {
			result += "c"
		}
	}
	return NewCaseFormat(result)
}

// splitWords splits src into words on non alphanumeric separators and on case boundaries:
// lower or digit to upper ("userId"), and the last upper of an acronym followed by lower ("XMLParser")
func splitWords(src string) []string {
	var words []string
	start := -1
	prev := rune(-1)
	for i, r := range src {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start != -1 {
				words = append(words, src[start:i])
				start = -1
			}
			prev = -1
			continue
		}
		if start == -1 {
			start = i
			prev = r
			continue
		}
		if unicode.IsUpper(r) {
			boundary := unicode.IsLower(prev) || unicode.IsDigit(prev)
			if !boundary && unicode.IsUpper(prev) {
				next, _ := utf8.DecodeRuneInString(src[i+utf8.RuneLen(r):])
				boundary = unicode.IsLower(next)
			}
			if boundary {
				words = append(words, src[start:i])
				start = i
			}
		}
		prev = r
	}
	if start != -1 {
		words = append(words, src[start:])
	}
	return words
}
