package mongoengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
	"github.com/mgrotheer/mongo-leanshape-go/leanshape/mongoengine"
)

// FindLean and FindOneLean require a running server; their shaping behavior is
// covered through Process, which they delegate to after decoding.

func Test_NewCollection_RejectsNilCollection(t *testing.T) {
	normalizer := newNormalizer(t)

	collection, err := mongoengine.NewCollection(nil, normalizer)

	assert.ErrorIs(t, err, leanshape.ErrNilCollection)
	assert.Nil(t, collection)
}

func Test_NewCollection_NilNormalizerFallsBackToDefault(t *testing.T) {
	// A nil driver collection still fails first, so the fallback path is only
	// reachable with a real handle. Verify the nil-collection guard wins.
	collection, err := mongoengine.NewCollection(nil, nil)

	require.ErrorIs(t, err, leanshape.ErrNilCollection)
	assert.Nil(t, collection)
}
