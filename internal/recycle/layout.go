package recycle

import (
	"fmt"
	"log/slog"
	"math"
)

type LayoutKind int

const (
	// LayoutLinear stacks items one after another along the scroll axis.
	LayoutLinear LayoutKind = iota
	// LayoutGrid places fixed-size cells in rows or columns.
	LayoutGrid
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutLinear:
		return "linear"
	case LayoutGrid:
		return "grid"
	}
	return fmt.Sprintf("LayoutKind(%d)", int(k))
}

type Constraint int

const (
	// ConstraintFlexible fits as many cells on the cross axis as the
	// viewport allows.
	ConstraintFlexible Constraint = iota
	ConstraintFixedColumnCount
	ConstraintFixedRowCount
)

func (c Constraint) String() string {
	switch c {
	case ConstraintFlexible:
		return "flexible"
	case ConstraintFixedColumnCount:
		return "fixed-columns"
	case ConstraintFixedRowCount:
		return "fixed-rows"
	}
	return fmt.Sprintf("Constraint(%d)", int(c))
}

// Layout describes how the content container arranges its children. It is
// owned by the host; Resolve may rewrite a flexible constraint into a fixed
// one.
type Layout struct {
	Kind    LayoutKind
	Padding Padding

	// Spacing is the gap between stacked items (linear only).
	Spacing float64

	// Grid only.
	CellSize        Vec2
	GridSpacing     Vec2
	Constraint      Constraint
	ConstraintCount int
}

// Resolution is the outcome of resolving a layout against a viewport.
type Resolution struct {
	// ItemSize and Spacing are the per-axis cell size and gaps used by the
	// content sizer.
	ItemSize Vec2
	Spacing  Vec2

	// Footprint is item size plus spacing along the scroll axis.
	Footprint float64
	// ItemsPerEntry is the number of items in one row (or column).
	ItemsPerEntry int
	// Entries is the number of rows (or columns) the pool spans.
	Entries int
	// PoolSize is Entries * ItemsPerEntry, the physical instance count.
	PoolSize int
	// Band is the span of the whole pool along the scroll axis; the wrap
	// period of the recycler.
	Band float64
}

// Resolve computes the footprint, the items per entry and the pool size for
// layout inside a viewport. itemSize is the natural size of the reference
// item and is only used by linear layouts.
func Resolve(layout *Layout, viewport, itemSize Vec2, horizontal bool) (Resolution, error) {
	if layout == nil {
		return Resolution{}, &ConfigurationError{Layout: true}
	}

	var res Resolution
	switch layout.Kind {
	case LayoutGrid:
		res.ItemSize = layout.CellSize
		res.Spacing = layout.GridSpacing
	default:
		res.ItemSize = itemSize
		if horizontal {
			res.Spacing.X = layout.Spacing
		} else {
			res.Spacing.Y = layout.Spacing
		}
	}

	res.Footprint = res.ItemSize.Along(horizontal) + res.Spacing.Along(horizontal)
	if res.Footprint <= 0 {
		return Resolution{}, &ConfigurationError{
			Reason: fmt.Sprintf("footprint along the scroll axis is %g", res.Footprint),
		}
	}

	res.Entries = int(math.Ceil(viewport.Along(horizontal)/res.Footprint)) + 1
	res.Band = res.Footprint * float64(res.Entries)
	res.ItemsPerEntry = itemsPerEntry(layout, viewport, horizontal)
	res.PoolSize = res.Entries * res.ItemsPerEntry

	slog.Debug("Resolved recycle layout",
		"kind", layout.Kind,
		"horizontal", horizontal,
		"footprint", res.Footprint,
		"entries", res.Entries,
		"per_entry", res.ItemsPerEntry,
		"pool", res.PoolSize,
	)
	return res, nil
}

// itemsPerEntry returns the grid's cross-axis count. A flexible constraint is
// converted to the matching fixed one so later passes agree with this one.
func itemsPerEntry(layout *Layout, viewport Vec2, horizontal bool) int {
	if layout.Kind != LayoutGrid {
		return 1
	}
	if layout.Constraint == ConstraintFlexible {
		cross := layout.CellSize.Across(horizontal) + layout.GridSpacing.Across(horizontal)
		n := 1
		if cross > 0 {
			n = max(1, int(math.Floor(viewport.Across(horizontal)/cross)))
		}
		if horizontal {
			layout.Constraint = ConstraintFixedRowCount
		} else {
			layout.Constraint = ConstraintFixedColumnCount
		}
		layout.ConstraintCount = n
	}
	return max(1, layout.ConstraintCount)
}
