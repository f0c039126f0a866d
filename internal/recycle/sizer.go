package recycle

// ContentSize returns the virtual size of the content for count logical
// items. Only grids contribute to the cross axis; padding is always included.
func ContentSize(layout *Layout, res Resolution, count int, horizontal bool) Vec2 {
	size := layout.Padding.Size()
	entries := ceilDiv(max(0, count), res.ItemsPerEntry)

	along := extent(entries, res.ItemSize.Along(horizontal), res.Spacing.Along(horizontal))
	var across float64
	if layout.Kind == LayoutGrid {
		across = extent(res.ItemsPerEntry, res.ItemSize.Across(horizontal), res.Spacing.Across(horizontal))
	}

	if horizontal {
		size.X += along
		size.Y += across
	} else {
		size.Y += along
		size.X += across
	}
	return size
}

func extent(n int, size, spacing float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*size + float64(n-1)*spacing
}
