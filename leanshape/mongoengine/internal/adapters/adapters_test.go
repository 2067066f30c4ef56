package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape/mongoengine/internal/adapters"
)

func Test_AsDocument_RecognizedTypes(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		isDocument bool
		inPlace    bool
	}{
		{name: "generic_map", value: bson.M{"a": 1}, isDocument: true, inPlace: true},
		{name: "plain_map", value: map[string]any{"a": 1}, isDocument: true, inPlace: true},
		{name: "ordered_document_pointer", value: &bson.D{{Key: "a", Value: 1}}, isDocument: true, inPlace: true},
		{name: "ordered_document_value", value: bson.D{{Key: "a", Value: 1}}, isDocument: true, inPlace: false},
		{name: "nil_value", value: nil, isDocument: false},
		{name: "typed_nil_map", value: bson.M(nil), isDocument: false},
		{name: "typed_nil_ordered_document_pointer", value: (*bson.D)(nil), isDocument: false},
		{name: "scalar", value: 42, isDocument: false},
		{name: "string", value: "nope", isDocument: false},
		{name: "array", value: bson.A{}, isDocument: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := adapters.AsDocument(tt.value)

			assert.Equal(t, tt.isDocument, ok)
			if tt.isDocument {
				require.NotNil(t, doc)
				assert.Equal(t, tt.inPlace, doc.InPlace())
			}
		})
	}
}

func Test_AsSequence_RecognizedTypes(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		isSequence bool
		length     int
	}{
		{name: "generic_array", value: bson.A{1, 2}, isSequence: true, length: 2},
		{name: "plain_slice", value: []any{1}, isSequence: true, length: 1},
		{name: "map_slice", value: []bson.M{{}, {}, {}}, isSequence: true, length: 3},
		{name: "plain_map_slice", value: []map[string]any{}, isSequence: true, length: 0},
		{name: "ordered_document_slice", value: []bson.D{{}}, isSequence: true, length: 1},
		{name: "singular_document", value: bson.M{}, isSequence: false},
		{name: "scalar", value: 42, isSequence: false},
		{name: "nil_value", value: nil, isSequence: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := adapters.AsSequence(tt.value)

			assert.Equal(t, tt.isSequence, ok)
			if tt.isSequence {
				require.NotNil(t, seq)
				assert.Equal(t, tt.length, seq.Len())
			}
		})
	}
}

func Test_MapDocument_Mutations(t *testing.T) {
	original := bson.M{"a": 1, "b": "two"}
	doc, ok := adapters.AsDocument(original)
	require.True(t, ok)

	t.Run("lookup_existing_key", func(t *testing.T) {
		value, exists := doc.Lookup("a")
		assert.True(t, exists)
		assert.Equal(t, 1, value)
	})

	t.Run("lookup_missing_key", func(t *testing.T) {
		_, exists := doc.Lookup("missing")
		assert.False(t, exists)
	})

	t.Run("store_reaches_the_original_container", func(t *testing.T) {
		doc.Store("a", "replaced")
		doc.Store("c", true)

		assert.Equal(t, "replaced", original["a"])
		assert.Equal(t, true, original["c"])
	})

	t.Run("remove_reaches_the_original_container", func(t *testing.T) {
		doc.Remove("b")

		assert.NotContains(t, original, "b")
	})

	t.Run("unwrap_returns_the_original_concrete_type", func(t *testing.T) {
		unwrapped, isMap := doc.Unwrap().(bson.M)
		require.True(t, isMap)
		assert.Equal(t, "replaced", unwrapped["a"])
	})
}

func Test_OrderedDocument_Mutations(t *testing.T) {
	t.Run("store_of_existing_key_mutates_the_shared_backing_array", func(t *testing.T) {
		original := bson.D{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
		doc, ok := adapters.AsDocument(original)
		require.True(t, ok)

		doc.Store("a", "replaced")

		assert.Equal(t, "replaced", original[0].Value)
	})

	t.Run("store_of_new_key_appends_preserving_order", func(t *testing.T) {
		elements := bson.D{{Key: "a", Value: 1}}
		doc, ok := adapters.AsDocument(&elements)
		require.True(t, ok)

		doc.Store("b", 2)

		require.Len(t, elements, 2)
		assert.Equal(t, "a", elements[0].Key)
		assert.Equal(t, "b", elements[1].Key)
		assert.Equal(t, 2, elements[1].Value)
	})

	t.Run("remove_deletes_the_element_through_the_anchor", func(t *testing.T) {
		elements := bson.D{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}}
		doc, ok := adapters.AsDocument(&elements)
		require.True(t, ok)

		doc.Remove("b")

		require.Len(t, elements, 2)
		assert.Equal(t, "a", elements[0].Key)
		assert.Equal(t, "c", elements[1].Key)
	})

	t.Run("remove_of_missing_key_is_a_no_op", func(t *testing.T) {
		elements := bson.D{{Key: "a", Value: 1}}
		doc, ok := adapters.AsDocument(&elements)
		require.True(t, ok)

		doc.Remove("missing")

		assert.Len(t, elements, 1)
	})

	t.Run("unwrap_returns_the_current_elements", func(t *testing.T) {
		elements := bson.D{{Key: "a", Value: 1}}
		doc, ok := adapters.AsDocument(&elements)
		require.True(t, ok)

		doc.Store("b", 2)

		unwrapped, isOrdered := doc.Unwrap().(bson.D)
		require.True(t, isOrdered)
		assert.Len(t, unwrapped, 2)
	})
}

func Test_Sequence_IndexAndWriteBack(t *testing.T) {
	t.Run("set_index_reaches_the_original_slice", func(t *testing.T) {
		original := []bson.D{{{Key: "a", Value: 1}}}
		seq, ok := adapters.AsSequence(original)
		require.True(t, ok)

		element := seq.Index(0).(bson.D)
		element = append(element, bson.E{Key: "b", Value: 2})
		seq.SetIndex(0, element)

		require.Len(t, original[0], 2)
		assert.Equal(t, "b", original[0][1].Key)
	})

	t.Run("set_index_with_a_foreign_type_is_dropped", func(t *testing.T) {
		original := []bson.M{{"a": 1}}
		seq, ok := adapters.AsSequence(original)
		require.True(t, ok)

		seq.SetIndex(0, "not a document")

		assert.Equal(t, bson.M{"a": 1}, original[0])
	})

	t.Run("index_returns_the_element", func(t *testing.T) {
		seq, ok := adapters.AsSequence(bson.A{"first", "second"})
		require.True(t, ok)

		assert.Equal(t, "first", seq.Index(0))
		assert.Equal(t, "second", seq.Index(1))
	})
}
