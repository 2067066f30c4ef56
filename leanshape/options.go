package leanshape

import (
	"errors"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

// Keys recognized in a dynamic option bag, as attached to a query by callers
// that configure their queries with loosely typed documents.
const (
	optionKeyLean          = "lean"
	optionKeyStringifyKeys = "stringifyKeys"
	optionKeyShowVersion   = "showVersion"
	optionKeyStringifyID   = "stringifyId"
	optionKeyRename        = "rename"
)

// Options is the per-query configuration for one lean result-shaping pass.
// It is created by the caller per query invocation, read-only to the engine,
// and discarded after the query resolves.
//
// The zero value is disabled: an engine receiving it leaves the result untouched.
// Enabled Options should be constructed with BuildLeanOptions, OptionsFromMap,
// or OptionsFromJSON, which apply the documented defaults.
type Options struct {
	lean          bool
	stringifyKeys []Path
	showVersion   bool
	stringifyID   bool
	rename        string
}

// Lean reports whether lean result shaping was requested for the query.
func (o Options) Lean() bool {
	return o.lean
}

// StringifyKeys returns the ordered nested paths whose terminal identifier
// values should be converted to their string form.
func (o Options) StringifyKeys() []Path {
	return o.stringifyKeys
}

// ShowVersion reports whether the internal version field should be kept.
func (o Options) ShowVersion() bool {
	return o.showVersion
}

// StringifyID reports whether the primary identifier field should be
// converted to its string form.
func (o Options) StringifyID() bool {
	return o.stringifyID
}

// Rename returns the field name the primary identifier should be moved to,
// or the empty string when no rename was requested.
func (o Options) Rename() string {
	return o.rename
}

// DisabledOptions returns Options with lean shaping switched off.
// An engine receiving them performs no mutation at all.
func DisabledOptions() Options {
	return Options{}
}

// OptionsBuilder accumulates per-query options fluently and must be completed
// with Finalize.
type OptionsBuilder struct {
	opts Options
}

// BuildLeanOptions starts an OptionsBuilder with lean shaping enabled and the
// defaults applied: no stringify keys, version field stripped, primary
// identifier stringified, no rename.
func BuildLeanOptions() OptionsBuilder {
	return OptionsBuilder{
		opts: Options{
			lean:        true,
			stringifyID: true,
		},
	}
}

// StringifyingKeys adds one or multiple nested paths whose terminal identifier
// values should be stringified.
//
// It sanitizes the input:
//   - removing empty paths
//   - removing duplicate paths while preserving first-seen order
func (b OptionsBuilder) StringifyingKeys(key Path, keys ...Path) OptionsBuilder {
	allKeys := append([]Path{key}, keys...)

	for _, k := range allKeys {
		if k.IsZero() || slices.Contains(b.opts.stringifyKeys, k) {
			continue
		}

		b.opts.stringifyKeys = append(b.opts.stringifyKeys, k)
	}

	return b
}

// ShowingVersionField keeps the internal version field instead of stripping it.
func (b OptionsBuilder) ShowingVersionField() OptionsBuilder {
	b.opts.showVersion = true

	return b
}

// WithoutIDStringification leaves the primary identifier in its raw
// identifier-typed form. Combined with RenamingIDTo, the destination field
// then holds the raw identifier instead of its string form.
func (b OptionsBuilder) WithoutIDStringification() OptionsBuilder {
	b.opts.stringifyID = false

	return b
}

// RenamingIDTo moves the primary identifier to the given field name after the
// identifier rewrite. An empty name disables the rename.
func (b OptionsBuilder) RenamingIDTo(fieldName string) OptionsBuilder {
	b.opts.rename = fieldName

	return b
}

// Finalize returns the accumulated Options.
func (b OptionsBuilder) Finalize() Options {
	return b.opts
}

// OptionsFromMap resolves a dynamic option bag into typed Options.
//
// Fields of an unexpected type count as absent and degrade to their default
// rather than producing an error: a malformed option disables the feature it
// would have configured. A nil map yields disabled Options.
func OptionsFromMap(raw map[string]any) Options {
	if raw == nil {
		return Options{}
	}

	opts := Options{stringifyID: true}

	if lean, ok := raw[optionKeyLean].(bool); ok {
		opts.lean = lean
	}

	opts.stringifyKeys = pathsFromValue(raw[optionKeyStringifyKeys])

	if showVersion, ok := raw[optionKeyShowVersion].(bool); ok {
		opts.showVersion = showVersion
	}

	if stringifyID, ok := raw[optionKeyStringifyID].(bool); ok {
		opts.stringifyID = stringifyID
	}

	if rename, ok := raw[optionKeyRename].(string); ok {
		opts.rename = rename
	}

	return opts
}

// OptionsFromJSON resolves a JSON-encoded dynamic option bag into typed Options.
// Returns ErrInvalidOptionsJSON if the input is not a valid JSON object;
// unexpected field types inside a valid object degrade to defaults as in
// OptionsFromMap.
func OptionsFromJSON(data []byte) (Options, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return Options{}, ErrInvalidOptionsJSON
	}

	var raw map[string]any
	if unmarshalErr := jsoniter.ConfigFastest.Unmarshal(data, &raw); unmarshalErr != nil {
		return Options{}, errors.Join(ErrInvalidOptionsJSON, unmarshalErr)
	}

	return OptionsFromMap(raw), nil
}

// pathsFromValue extracts path expressions from the loosely typed shapes a
// dynamic bag may carry them in. Anything else yields no paths.
func pathsFromValue(value any) []Path {
	var paths []Path

	appendPath := func(p Path) {
		if p.IsZero() || slices.Contains(paths, p) {
			return
		}
		paths = append(paths, p)
	}

	switch v := value.(type) {
	case []Path:
		for _, p := range v {
			appendPath(p)
		}

	case []string:
		for _, s := range v {
			appendPath(Path(s))
		}

	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				appendPath(Path(s))
			}
		}
	}

	return paths
}
