package tabs

import "math"

// Tab geometry constants, in pixels.
const (
	// AdjacentSpace is how far a tab's slanted edge reaches under its neighbor.
	AdjacentSpace   = 9
	OverlapDistance = AdjacentSpace*2 + 1

	MinWidth = 24 + AdjacentSpace*2
	MaxWidth = 240 + AdjacentSpace*2
)

// Size thresholds compared against the effective width.
const (
	SizeSmall   = 84
	SizeSmaller = 60
	SizeMini    = 48
)

// Geometry is the result of one layout computation.
type Geometry struct {
	TabWidth       int
	EffectiveWidth int   // TabWidth without the overlapping edge
	Positions      []int // Left offset per slot
}

// ComputeGeometry sizes tabCount tabs into a container of the given width.
// Widths are clamped to [MinWidth, MaxWidth] and rounded to whole pixels so
// adjacent tab backgrounds never leave a seam.
func ComputeGeometry(containerWidth, tabCount int) Geometry {
	if tabCount <= 0 {
		return Geometry{
			TabWidth:       MinWidth,
			EffectiveWidth: MinWidth - OverlapDistance,
			Positions:      []int{},
		}
	}

	raw := float64(containerWidth-OverlapDistance)/float64(tabCount) + OverlapDistance
	clamped := math.Max(MinWidth, math.Min(MaxWidth, raw))
	width := int(math.Round(clamped))
	effective := width - OverlapDistance

	positions := make([]int, tabCount)
	for i := range positions {
		positions[i] = i * effective
	}

	return Geometry{
		TabWidth:       width,
		EffectiveWidth: effective,
		Positions:      positions,
	}
}

// sizeFlagsFor returns the size classes for an effective width. Each flag is
// set independently when the width falls strictly below its threshold.
func sizeFlagsFor(effectiveWidth int) Flag {
	var f Flag
	if effectiveWidth < SizeSmall {
		f |= FlagSmall
	}
	if effectiveWidth < SizeSmaller {
		f |= FlagSmaller
	}
	if effectiveWidth < SizeMini {
		f |= FlagMini
	}
	return f
}

// destinationIndex maps a dragged tab's left edge to the slot it would land in.
// A tab takes a neighbor's slot once it passes the midpoint between slots. The
// result is clamped to [0, tabCount]; tabCount itself means "after the last".
func destinationIndex(currentX float64, effectiveWidth, tabCount int) int {
	if effectiveWidth <= 0 {
		return 0
	}
	ew := float64(effectiveWidth)
	dest := int(math.Floor((currentX + ew/2) / ew))
	return max(0, min(tabCount, dest))
}
