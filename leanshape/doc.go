// Package leanshape provides core abstractions and types for shaping the
// results of lean read queries against a document store.
//
// This package defines the per-query configuration, path expressions, and
// common error definitions used by the store-specific engines, most notably
// the MongoDB engine in the mongoengine subpackage.
//
// A lean query returns plain decoded documents instead of behavior-carrying
// model objects. The result shaper normalizes such documents after query
// completion:
//   - identifier values at configured nested paths are converted to their
//     hex-string form, fanning out across arrays of subdocuments
//   - the internal version counter field is stripped
//   - the primary identifier field is stringified and optionally renamed
//
// Key types:
//   - Options: per-query configuration, built fluently or resolved from a
//     dynamic option bag
//   - Path: a dot-separated path expression into nested documents
//   - Continuation: the two-outcome completion signal of one pass
//
// Common usage pattern:
//
//	opts := leanshape.BuildLeanOptions().
//		StringifyingKeys("contributors._id").
//		RenamingIDTo("uid").
//		Finalize()
//
//	normalizer, _ := mongoengine.NewNormalizer()
//	err := normalizer.Process(ctx, result, opts)
//	if err != nil {
//		// the query itself is considered failed
//	}
package leanshape
