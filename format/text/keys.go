package text

import "strings"

// SnakeToCamel replaces every '_' directly followed by an ASCII lower case letter with that letter upper cased.
// Matches do not overlap and are taken left to right, any other '_' is kept, i.e. "start_date" -> "startDate",
// "a__b" -> "a_B", "user_ID" -> "user_ID".
func SnakeToCamel(key string) string {
	i := strings.IndexByte(key, '_')
	if i == -1 {
		return key
	}
	var result strings.Builder
	result.Grow(len(key))
	result.WriteString(key[:i])
	for ; i < len(key); i++ {
		b := key[i]
		if b == '_' && i+1 < len(key) && isLowerASCII(key[i+1]) {
			result.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		result.WriteByte(b)
	}
	return result.String()
}

// CamelToSnake replaces every ASCII upper case letter with '_' followed by its lower case form.
// Each letter of an upper case run is rewritten on its own: "activityName" -> "activity_name", "ID" -> "_i_d".
func CamelToSnake(key string) string {
	upper := 0
	for i := 0; i < len(key); i++ {
		if isUpperASCII(key[i]) {
			upper++
		}
	}
	if upper == 0 {
		return key
	}
	var result strings.Builder
	result.Grow(len(key) + upper)
	for i := 0; i < len(key); i++ {
		b := key[i]
		if isUpperASCII(b) {
			result.WriteByte('_')
			result.WriteByte(b - 'A' + 'a')
			continue
		}
		result.WriteByte(b)
	}
	return result.String()
}

func isLowerASCII(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
