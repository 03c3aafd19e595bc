package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistanceBasics(t *testing.T) {
	assert.Equal(t, 0, EditDistance("smith", "smith"))
	assert.Equal(t, 0, EditDistance("Smith", " smith "), "case and whitespace are normalized")
	assert.Equal(t, 5, EditDistance("", "smith"))
	assert.Equal(t, 5, EditDistance("smith", ""))
	assert.Equal(t, 1, EditDistance("smith", "smyth"))
	assert.Equal(t, 1, EditDistance("smith", "smiths"))
	assert.Equal(t, 3, EditDistance("john", "jane"))
	assert.Equal(t, 3, EditDistance("kitten", "sitting"))
}

func TestEditDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"john", "jon"},
		{"", "x"},
		{"williams", "willams"},
		{"o'brien", "obrien"},
		{"a", "ab"},
	}
	for _, p := range pairs {
		assert.Equal(t, EditDistance(p[0], p[1]), EditDistance(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestEditDistanceCapsPathologicalInput(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}
	// must terminate quickly; distance is bounded by the cap
	d := EditDistance(string(long), "a")
	assert.Equal(t, maxCompareLen-1, d)
}
