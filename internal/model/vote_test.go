package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyPercentages(t *testing.T) {
	testCases := []struct {
		name          string
		tally         Tally
		expectedLeft  int
		expectedRight int
	}{
		{name: "empty tally shows zero on both sides", tally: Tally{}, expectedLeft: 0, expectedRight: 0},
		{name: "even split", tally: Tally{Left: 2, Right: 2}, expectedLeft: 50, expectedRight: 50},
		{name: "right takes the remainder", tally: Tally{Left: 1, Right: 2}, expectedLeft: 33, expectedRight: 67},
		{name: "one sided", tally: Tally{Left: 5}, expectedLeft: 100, expectedRight: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			left, right := tc.tally.Percentages()
			assert.Equal(t, tc.expectedLeft, left)
			assert.Equal(t, tc.expectedRight, right)
			if tc.tally.Total() > 0 {
				assert.Equal(t, 100, left+right)
			}
		})
	}
}

func TestTallyVerdict(t *testing.T) {
	assert.Equal(t, WinnerLeft, Tally{Left: 3, Right: 1}.Verdict())
	assert.Equal(t, WinnerRight, Tally{Left: 1, Right: 3}.Verdict())
	assert.Equal(t, WinnerTie, Tally{Left: 2, Right: 2}.Verdict())
	assert.Equal(t, WinnerTie, Tally{}.Verdict())
}

func TestRoomIDShort(t *testing.T) {
	assert.Equal(t, "1a2b3c4d", RoomID("1a2b3c4d-ffff-4000-8000-000000000000").Short())
	assert.Equal(t, "abc", RoomID("abc").Short())
}

func TestSideIsDrawer(t *testing.T) {
	assert.True(t, SideLeft.IsDrawer())
	assert.True(t, SideRight.IsDrawer())
	assert.False(t, SideSpectator.IsDrawer())
}
