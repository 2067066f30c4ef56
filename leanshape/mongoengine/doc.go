// Package mongoengine provides the MongoDB implementation of the lean
// result-shaping pipeline.
//
// The Normalizer runs once after each completed lean read query, inspects the
// per-query leanshape.Options, and applies up to four independent rewrites to
// the decoded result: nested identifier stringification along configured path
// expressions, version field removal, primary identifier stringification, and
// primary identifier renaming. Results are mutated in place; a singular
// document stays singular and a slice keeps its length and order.
//
// Key features:
//   - Works on every decoded shape a lean query produces (bson.M,
//     map[string]any, *bson.D, bson.A, and typed document slices)
//   - Array fan-out: one path expression reaches into every element of a
//     subdocument array
//   - Configurable identifier and version field names and dual logger support
//   - Optional metrics and tracing through dependency-free collector interfaces
//
// Usage examples:
//
//	// Basic usage
//	normalizer, _ := mongoengine.NewNormalizer()
//	opts := leanshape.BuildLeanOptions().StringifyingKeys("contributors._id").Finalize()
//	err := normalizer.Process(ctx, result, opts)
//
//	// With operational logging and custom field names
//	normalizer, _ := mongoengine.NewNormalizer(
//		mongoengine.WithIDFieldName("_id"),
//		mongoengine.WithVersionFieldName("__v"),
//		mongoengine.WithLogger(logger),
//	)
//
//	// As a post-query hook with a completion continuation
//	normalizer.PostQuery(ctx, result, opts, func(err error) { ... })
package mongoengine
