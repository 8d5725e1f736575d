package json

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidJSON reports malformed or empty JSON input
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrDuplicateKey reports a repeated object key with ErrorOnDuplicate policy
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnsupportedScalar reports a scalar value that has no JSON representation
	ErrUnsupportedScalar = errors.New("unsupported scalar")
)

// Number represents JSON number literal, kept as is to avoid precision loss
type Number string

// String returns number literal
func (n Number) String() string { return string(n) }

// Float64 returns the number as a float64
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 returns the number as an int64
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// NumberPolicy controls decoded number representation.
type NumberPolicy int

const (
	// ExactNumbers keeps numbers as Number literal
	ExactNumbers NumberPolicy = iota
	// CoerceNumbers decodes numbers as float64
	CoerceNumbers
)

// DuplicateKeyPolicy controls duplicate object key behavior.
type DuplicateKeyPolicy int

const (
	// LastWins keeps the first key position with the last value
	LastWins DuplicateKeyPolicy = iota
	// ErrorOnDuplicate fails decoding
	ErrorOnDuplicate
)

// Option configures decoding and encoding
type Option interface{ apply(*Options) }

// Options defines decoding and encoding behavior.
type Options struct {
	NumberPolicy       NumberPolicy
	DuplicateKeyPolicy DuplicateKeyPolicy
	// TimeLayout formats time.Time scalars, RFC3339Nano when empty
	TimeLayout string
}
