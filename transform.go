package keycase

import "github.com/viant/keycase/format/text"

// KeyFunc rewrites a mapping key
type KeyFunc func(key string) string

// Transformer rewrites mapping keys at every depth of a node, preserving its shape and values
type Transformer struct {
	rewrite KeyFunc
}

// Transform returns a new node with keys rewritten; input is never modified
func (t *Transformer) Transform(input Node) Node {
	return Transform(input, t.rewrite)
}

// New creates a transformer, nil rewrite keeps keys as is
func New(rewrite KeyFunc) *Transformer {
	if rewrite == nil {
		rewrite = func(key string) string { return key }
	}
	return &Transformer{rewrite: rewrite}
}

var (
	camelCase = New(text.SnakeToCamel)
	snakeCase = New(text.CamelToSnake)
)

// ToCamelCase rewrites snake_case keys to camelCase: "_" followed by a lower case letter becomes that letter upper cased
func ToCamelCase(input Node) Node {
	return camelCase.Transform(input)
}

// ToSnakeCase rewrites camelCase keys to snake_case: each upper case letter becomes "_" and its lower case form
func ToSnakeCase(input Node) Node {
	return snakeCase.Transform(input)
}

// WordCase returns a word boundary aware KeyFunc, i.e. lowerCamel to lowerUnderscore maps "userID" to "user_id"
func WordCase(from, to text.CaseFormat) KeyFunc {
	return from.To(to).Format
}

// Transform rewrites input keys with rewrite.
// Arrays and mappings are always copied, absence markers and scalars are returned as is.
func Transform(input Node, rewrite KeyFunc) Node {
	switch actual := input.(type) {
	case nil:
		return nil
	case Null:
		return actual
	case Array:
		if actual == nil {
			return actual
		}
		ret := make(Array, len(actual))
		for i, item := range actual {
			ret[i] = Transform(item, rewrite)
		}
		return ret
	case *Mapping:
		if actual == nil {
			return actual
		}
		ret := NewMapping(actual.Len())
		for _, entry := range actual.entries {
			ret.Set(rewrite(entry.Key), Transform(entry.Value, rewrite))
		}
		return ret
	default:
		return input
	}
}
