package adapters

// Document is a mutable view over one decoded document.
//
// Store of an existing key must replace the value in place, so that views
// sharing the underlying container observe the change. Store of a new key and
// Remove may reallocate the container; whether such structural changes reach
// the container's owner is reported by InPlace, and callers of sequence
// elements must write the Unwrap result back after mutating.
type Document interface {
	Lookup(key string) (any, bool)
	Store(key string, value any)
	Remove(key string)
	Unwrap() any
	InPlace() bool
}

// Sequence is a mutable view over an ordered list of decoded values.
type Sequence interface {
	Len() int
	Index(i int) any
	SetIndex(i int, value any)
}
