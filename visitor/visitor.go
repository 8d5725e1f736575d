package visitor

// Visitor iterates (key, element) pairs of a container, calling fn for each pair.
// Iteration stops when fn returns false or an error, the error is returned to the caller.
type Visitor[K comparable, E any] func(fn func(key K, element E) (bool, error)) error
