package layout

// CalculateListHeight computes the rows available for list content.
// Returns at least MinHeight.
func CalculateListHeight(terminalHeight int, cfg ListConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateVisibleItems computes how many items of linesPerItem rows fit in height.
func CalculateVisibleItems(height, linesPerItem int) int {
	if linesPerItem < 1 {
		linesPerItem = 1
	}
	n := height / linesPerItem
	if n < 1 {
		return 1
	}
	return n
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(terminalWidth int, cfg ListConfig) int {
	width := terminalWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
