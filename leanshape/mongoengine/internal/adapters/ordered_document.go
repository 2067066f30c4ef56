package adapters

import (
	"slices"

	"go.mongodb.org/mongo-driver/bson"
)

// orderedDocument wraps an ordered bson.D document. Value replacement for an
// existing key mutates the shared backing array; key insertion and removal
// reallocate the slice header, which only reaches the owner when the wrapper
// was created from the owner's *bson.D (anchored).
type orderedDocument struct {
	elements *bson.D
	anchored bool
}

// Lookup returns the value stored under key.
func (o *orderedDocument) Lookup(key string) (any, bool) {
	for _, element := range *o.elements {
		if element.Key == key {
			return element.Value, true
		}
	}

	return nil, false
}

// Store replaces the value of an existing key in place, or appends a new element.
func (o *orderedDocument) Store(key string, value any) {
	for i := range *o.elements {
		if (*o.elements)[i].Key == key {
			(*o.elements)[i].Value = value
			return
		}
	}

	*o.elements = append(*o.elements, bson.E{Key: key, Value: value})
}

// Remove deletes the first element with the given key.
func (o *orderedDocument) Remove(key string) {
	for i := range *o.elements {
		if (*o.elements)[i].Key == key {
			*o.elements = slices.Delete(*o.elements, i, i+1)
			return
		}
	}
}

// Unwrap returns the current state of the underlying bson.D.
func (o *orderedDocument) Unwrap() any {
	return *o.elements
}

// InPlace reports whether structural changes (insertion/removal) reach the owner.
func (o *orderedDocument) InPlace() bool {
	return o.anchored
}
