package keycase

// Kind represents node variant
type Kind int

const (
	// KindUndefined represents a nil Node, no value at all
	KindUndefined Kind = iota
	// KindNull represents an explicit null
	KindNull
	// KindArray represents an ordered sequence
	KindArray
	// KindMapping represents string keyed mapping
	KindMapping
	// KindScalar represents any other value
	KindScalar
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindMapping:
		return "mapping"
	case KindScalar:
		return "scalar"
	default:
		return "undefined"
	}
}

// Node represents a decoded payload value: Null, Array, *Mapping or Scalar; a nil Node is undefined
type Node interface {
	Kind() Kind
	node()
}

// KindOf returns node kind, KindUndefined for nil
func KindOf(n Node) Kind {
	if n == nil {
		return KindUndefined
	}
	return n.Kind()
}

// Null represents an explicit absence of value
type Null struct{}

// Kind returns KindNull
func (Null) Kind() Kind { return KindNull }
func (Null) node()      {}

// Array represents an ordered sequence of nodes
type Array []Node

// Kind returns KindArray
func (Array) Kind() Kind { return KindArray }
func (Array) node()      {}

// Scalar represents a value that is never recursed into
type Scalar struct {
	Value interface{}
}

// Kind returns KindScalar
func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) node()      {}

// NewScalar creates a scalar node
func NewScalar(value interface{}) Scalar {
	return Scalar{Value: value}
}

// Entry represents a mapping key/value pair
type Entry struct {
	Key   string
	Value Node
}

// Mapping represents string keyed nodes with insertion order
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// Kind returns KindMapping
func (*Mapping) Kind() Kind { return KindMapping }
func (*Mapping) node()      {}

// NewMapping creates a mapping
func NewMapping(capacity int) *Mapping {
	return &Mapping{
		entries: make([]Entry, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// MappingOf creates a mapping from entries, a repeated key keeps its first position and the last value
func MappingOf(entries ...Entry) *Mapping {
	ret := NewMapping(len(entries))
	for _, entry := range entries {
		ret.Set(entry.Key, entry.Value)
	}
	return ret
}

// Set sets key value, an existing key keeps its position
func (m *Mapping) Set(key string, value Node) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if pos, ok := m.index[key]; ok {
		m.entries[pos].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Get returns key value
func (m *Mapping) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	pos, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[pos].Value, true
}

// Len returns number of keys
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns keys in insertion order
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	ret := make([]string, len(m.entries))
	for i, entry := range m.entries {
		ret[i] = entry.Key
	}
	return ret
}

// Entries returns a copy of entries in insertion order
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	ret := make([]Entry, len(m.entries))
	copy(ret, m.entries)
	return ret
}

// Range calls fn for each entry in insertion order until fn returns false
func (m *Mapping) Range(fn func(key string, value Node) bool) {
	if m == nil {
		return
	}
	for _, entry := range m.entries {
		if !fn(entry.Key, entry.Value) {
			return
		}
	}
}
