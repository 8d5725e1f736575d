package text

import (
	"strings"
	"sync"
	"unicode"
)

var (
	caseFormatters = make([]*CaseFormatter, len(caseFormats)*len(caseFormats))
	mux            sync.RWMutex
)

// CaseFormatter defines word boundary aware case formatter
type CaseFormatter struct {
	nop       bool
	from      CaseFormat
	to        CaseFormat
	sep       string
	firstWord func(word string) string
	nextWords func(word string) string
}

// From returns source case format
func (c *CaseFormatter) From() CaseFormat {
	return c.from
}

// To returns destination case format
func (c *CaseFormatter) To() CaseFormat {
	return c.to
}

// Format converts source to desired case format
func (c *CaseFormatter) Format(src string) string {
	if c.nop {
		return src
	}
	words := splitWords(src)
	if len(words) == 0 {
		return src
	}
	var result = strings.Builder{}
	result.Grow(len(src) + len(words)*len(c.sep))
	result.WriteString(c.firstWord(words[0]))
	for _, word := range words[1:] {
		result.WriteString(c.sep)
		result.WriteString(c.nextWords(word))
	}
	return result.String()
}

// To returns cached formatter converting from c to to case format
func (c CaseFormat) To(to CaseFormat) *CaseFormatter {
	from, dest := c.Index(), to.Index()
	if from == 0 || dest == 0 {
		return &CaseFormatter{nop: true, from: c, to: to}
	}
	index := from*len(caseFormats) + dest
	mux.RLock()
	ret := caseFormatters[index]
	mux.RUnlock()
	if ret != nil {
		return ret
	}
	ret = newCaseFormatter(caseFormats[from], caseFormats[dest])
	mux.Lock()
	caseFormatters[index] = ret
	mux.Unlock()
	return ret
}

func newCaseFormatter(from, to CaseFormat) *CaseFormatter {
	ret := &CaseFormatter{
		from:      from,
		to:        to,
		firstWord: rawText,
		nextWords: rawText,
	}
	toUpper := false
	toLower := false
	isCamel := false
	switch to {
	case CaseFormatUpperUnderscore:
		ret.sep = "_"
		toUpper = true
	case CaseFormatLowerUnderscore:
		ret.sep = "_"
		toLower = true
	case CaseFormatDash:
		ret.sep = "-"
	case CaseFormatUpperDash:
		ret.sep = "-"
		toUpper = true
	case CaseFormatLowerDash:
		ret.sep = "-"
		toLower = true
	case CaseFormatUpper:
		toUpper = true
	case CaseFormatLower:
		toLower = true
	case CaseFormatUpperCamel, CaseFormatLowerCamel:
		isCamel = true
	case CaseFormatTitle:
		ret.sep = " "
		isCamel = true
	case CaseFormatSentence:
		ret.sep = " "
		ret.firstWord = ToTitle
		ret.nextWords = strings.ToLower
	}
	switch {
	case toUpper:
		ret.firstWord = strings.ToUpper
		ret.nextWords = strings.ToUpper
	case toLower:
		ret.firstWord = strings.ToLower
		ret.nextWords = strings.ToLower
	case isCamel:
		ret.firstWord = ToTitle
		ret.nextWords = ToTitle
		if to == CaseFormatLowerCamel {
			ret.firstWord = strings.ToLower
		}
	}
	return ret
}

func rawText(w string) string {
	return w
}

// ToTitle upper cases the first rune and lower cases the rest
func ToTitle(word string) string {
	if word == "" {
		return word
	}
	var ret = make([]rune, 0, len(word))
	for i, r := range word {
		if i == 0 {
			ret = append(ret, unicode.ToUpper(r))
			continue
		}
		ret = append(ret, unicode.ToLower(r))
	}
	return string(ret)
}
