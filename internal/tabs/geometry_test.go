package tabs

import "testing"

func TestComputeGeometry(t *testing.T) {
	testCases := []struct {
		name      string
		width     int
		count     int
		tabWidth  int
		effective int
	}{
		{"single tab clamps to max", 900, 1, MaxWidth, MaxWidth - OverlapDistance},
		{"five tabs", 900, 5, 195, 176},       // 881/5 + 19 = 195.2
		{"six tabs shrink", 900, 6, 166, 147}, // 881/6 + 19 = 165.83
		{"narrow container clamps to min", 100, 10, MinWidth, MinWidth - OverlapDistance},
		{"zero width clamps to min", 0, 3, MinWidth, MinWidth - OverlapDistance},
		{"exact max", 258*4 - 19*3, 4, MaxWidth, MaxWidth - OverlapDistance},
	}

	for _, tc := range testCases {
		g := ComputeGeometry(tc.width, tc.count)
		if g.TabWidth != tc.tabWidth {
			t.Errorf("%s: expected tab width %d, got %d", tc.name, tc.tabWidth, g.TabWidth)
		}
		if g.EffectiveWidth != tc.effective {
			t.Errorf("%s: expected effective width %d, got %d", tc.name, tc.effective, g.EffectiveWidth)
		}
		if len(g.Positions) != tc.count {
			t.Errorf("%s: expected %d positions, got %d", tc.name, tc.count, len(g.Positions))
		}
	}
}

func TestComputeGeometry_Bounds(t *testing.T) {
	for width := 0; width <= 2000; width += 37 {
		for count := 1; count <= 40; count++ {
			g := ComputeGeometry(width, count)
			if g.TabWidth < MinWidth || g.TabWidth > MaxWidth {
				t.Fatalf("width=%d count=%d: tab width %d outside [%d, %d]", width, count, g.TabWidth, MinWidth, MaxWidth)
			}
			if g.EffectiveWidth != g.TabWidth-OverlapDistance {
				t.Fatalf("width=%d count=%d: effective width %d does not match tab width %d", width, count, g.EffectiveWidth, g.TabWidth)
			}
			for i, p := range g.Positions {
				if p != i*g.EffectiveWidth {
					t.Fatalf("width=%d count=%d: position[%d]=%d, expected %d", width, count, i, p, i*g.EffectiveWidth)
				}
				if i > 0 && p <= g.Positions[i-1] {
					t.Fatalf("width=%d count=%d: positions not strictly increasing at %d", width, count, i)
				}
			}
		}
	}
}

func TestComputeGeometry_ZeroTabs(t *testing.T) {
	for _, width := range []int{0, 500, 5000} {
		g := ComputeGeometry(width, 0)
		if g.TabWidth != MinWidth {
			t.Errorf("width=%d: expected fallback tab width %d, got %d", width, MinWidth, g.TabWidth)
		}
		if g.Positions == nil || len(g.Positions) != 0 {
			t.Errorf("width=%d: expected empty positions, got %v", width, g.Positions)
		}
	}
}

func TestSizeFlagsFor(t *testing.T) {
	testCases := []struct {
		effective int
		expected  Flag
	}{
		{200, 0},
		{84, 0},
		{83, FlagSmall},
		{60, FlagSmall},
		{59, FlagSmall | FlagSmaller},
		{50, FlagSmall | FlagSmaller},
		{48, FlagSmall | FlagSmaller},
		{47, FlagSmall | FlagSmaller | FlagMini},
		{MinWidth - OverlapDistance, FlagSmall | FlagSmaller | FlagMini},
	}

	for _, tc := range testCases {
		if got := sizeFlagsFor(tc.effective); got != tc.expected {
			t.Errorf("sizeFlagsFor(%d): expected %q, got %q", tc.effective, tc.expected, got)
		}
	}
}

func TestDestinationIndex(t *testing.T) {
	testCases := []struct {
		x        float64
		ew       int
		count    int
		expected int
	}{
		{0, 100, 5, 0},
		{49, 100, 5, 0},
		{50, 100, 5, 1},
		{149.9, 100, 5, 1},
		{150, 100, 5, 2},
		{-500, 100, 5, 0},
		{449, 100, 5, 4},
		// The upper clamp is the tab count, one past the last slot.
		{450, 100, 5, 5},
		{10000, 100, 5, 5},
		{10, 0, 5, 0},
	}

	for _, tc := range testCases {
		if got := destinationIndex(tc.x, tc.ew, tc.count); got != tc.expected {
			t.Errorf("destinationIndex(%v, %d, %d): expected %d, got %d", tc.x, tc.ew, tc.count, tc.expected, got)
		}
	}
}
