package mongoengine

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape/mongoengine/internal/adapters"
)

// rewriteDocument walks one record along the given path segments and converts
// every reachable terminal identifier value to its hex-string form, in place.
//
// It is best-effort and never fails: missing keys, null branches, non-document
// intermediates, and non-identifier terminals are silently left untouched.
func rewriteDocument(record adapters.Document, segments []string) {
	if len(segments) == 0 {
		return
	}

	if len(segments) > 1 {
		child, exists := record.Lookup(segments[0])
		if !exists || child == nil {
			return
		}

		rewriteValue(child, segments[1:])

		return
	}

	stringifyTerminal(record, segments[0])
}

// rewriteValue applies the remaining segments to an arbitrary decoded value.
// An array fans out: the same remaining segment list is applied independently
// to every element, so one path expression reaches into every element of a
// subdocument array without the caller enumerating indices.
func rewriteValue(value any, segments []string) {
	if value == nil || len(segments) == 0 {
		return
	}

	if sequence, isSequence := adapters.AsSequence(value); isSequence {
		for i := 0; i < sequence.Len(); i++ {
			rewriteValue(sequence.Index(i), segments)
		}

		return
	}

	document, isDocument := adapters.AsDocument(value)
	if !isDocument {
		return
	}

	rewriteDocument(document, segments)
}

// stringifyTerminal replaces an identifier-typed value under key with its hex
// string. Replacement of an existing key happens in place, so it is visible
// through every view sharing the underlying container.
func stringifyTerminal(record adapters.Document, key string) {
	value, exists := record.Lookup(key)
	if !exists {
		return
	}

	if identifier, isIdentifier := value.(primitive.ObjectID); isIdentifier {
		record.Store(key, identifier.Hex())
	}
}
