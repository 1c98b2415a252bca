package util_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tocin-lang/tocin/util"
)

func TestMapIterAppliesFunctionLazily(t *testing.T) {
	doubled := slices.Collect(util.MapIter(slices.Values([]int{1, 2, 3}), func(v int) int { return v * 2 }))
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestMapIterStopsWhenConsumerStops(t *testing.T) {
	var seen []int
	for v := range util.MapIter(slices.Values([]int{1, 2, 3, 4}), func(v int) int { return v }) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSetFromSeqDrainsEverything(t *testing.T) {
	s := util.SetFromSeq(slices.Values([]string{"a", "b", "a", "c"}), 4)
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("d"))
}
