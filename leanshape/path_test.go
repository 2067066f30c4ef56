package leanshape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgrotheer/mongo-leanshape-go/leanshape"
)

func Test_Path_Segments(t *testing.T) {
	tests := []struct {
		name     string
		path     leanshape.Path
		expected []string
	}{
		{
			name:     "empty_path_has_no_segments",
			path:     "",
			expected: nil,
		},
		{
			name:     "single_segment",
			path:     "owner",
			expected: []string{"owner"},
		},
		{
			name:     "two_segments",
			path:     "contributors._id",
			expected: []string{"contributors", "_id"},
		},
		{
			name:     "deeply_nested_segments",
			path:     "a.b.c.d",
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "consecutive_separators_yield_empty_segments",
			path:     "a..b",
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.path.Segments())
		})
	}
}

func Test_Path_IsZero(t *testing.T) {
	assert.True(t, leanshape.Path("").IsZero())
	assert.False(t, leanshape.Path("owner").IsZero())
}
