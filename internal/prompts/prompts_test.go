package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPicksFromList(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Contains(t, List, Random())
	}
}

func TestListHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool, len(List))
	for _, p := range List {
		assert.False(t, seen[p], p)
		seen[p] = true
	}
}
