package adapters

import (
	"go.mongodb.org/mongo-driver/bson"
)

// AsDocument wraps a decoded document value in the mutable Document view.
// It recognizes bson.M, map[string]any, bson.D, and *bson.D; nil containers
// and every other type are rejected.
func AsDocument(value any) (Document, bool) {
	switch v := value.(type) {
	case bson.M:
		if v == nil {
			return nil, false
		}

		return &mapDocument{fields: v, original: v}, true

	case map[string]any:
		if v == nil {
			return nil, false
		}

		return &mapDocument{fields: v, original: v}, true

	case *bson.D:
		if v == nil {
			return nil, false
		}

		return &orderedDocument{elements: v, anchored: true}, true

	case bson.D:
		copied := v

		return &orderedDocument{elements: &copied}, true

	default:
		return nil, false
	}
}

// AsSequence wraps a decoded array value in the mutable Sequence view.
// It recognizes bson.A, []any, and the typed document slices a lean query
// commonly decodes into.
func AsSequence(value any) (Sequence, bool) {
	switch v := value.(type) {
	case bson.A:
		return sliceSequence[any]{elements: v}, true

	case []any:
		return sliceSequence[any]{elements: v}, true

	case []bson.M:
		return sliceSequence[bson.M]{elements: v}, true

	case []map[string]any:
		return sliceSequence[map[string]any]{elements: v}, true

	case []bson.D:
		return sliceSequence[bson.D]{elements: v}, true

	default:
		return nil, false
	}
}
