// Package adapters provides container adapter implementations for the MongoDB
// result-shaping engine.
//
// Decoded lean results arrive in several concrete representations depending on
// how the caller decoded them: bson.M or map[string]any for unordered documents,
// bson.D (often behind a pointer) for ordered documents, and bson.A, []any, or
// typed document slices for arrays. All adapters present the same mutable
// Document and Sequence views, allowing the engine to traverse and rewrite a
// heterogeneous result graph without caring about the concrete container types.
package adapters
