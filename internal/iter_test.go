package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"x", "y"})
	b := slices.All([]string{"z"})

	var keys []int
	var values []string
	for k, v := range IterSeq2Concat(a, b) {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"x", "y", "z"}, values)

	// Early exit stops the walk.
	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestCollectPairs(t *testing.T) {
	assert := assert.New(t)

	seq := maps.All(map[string]int{"$ra": 31, "$0": 0, "$zero": 0})
	pairs := CollectPairs(seq, func(a, b Pair[string, int]) int {
		if n := len(b.Key) - len(a.Key); n != 0 {
			return n
		}
		if a.Key < b.Key {
			return -1
		}
		return 1
	})

	assert.Equal([]Pair[string, int]{
		{"$zero", 0},
		{"$ra", 31},
		{"$0", 0},
	}, pairs)
}
