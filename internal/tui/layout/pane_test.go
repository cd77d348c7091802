package layout

import "testing"

func TestCalculateListHeight(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 16},               // 24 - 8 = 16
		{"large terminal", 50, 42},                // 50 - 8 = 42
		{"small terminal enforces min", 10, 4},    // 10 - 8 = 2, min is 4
		{"terminal smaller than reduction", 4, 4}, // negative clamps to min
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateListHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateListHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleItems(t *testing.T) {
	tests := []struct {
		height, lines, want int
	}{
		{16, 1, 16},
		{16, 2, 8},
		{5, 2, 2},
		{1, 2, 1}, // at least one item
		{10, 0, 10},
	}

	for _, tt := range tests {
		if got := CalculateVisibleItems(tt.height, tt.lines); got != tt.want {
			t.Errorf("CalculateVisibleItems(%d, %d) = %d, want %d", tt.height, tt.lines, got, tt.want)
		}
	}
}

func TestCalculateItemWidth(t *testing.T) {
	cfg := DefaultConfig().List

	if got := CalculateItemWidth(80, cfg); got != 72 {
		t.Errorf("CalculateItemWidth(80) = %d, want 72", got)
	}
	if got := CalculateItemWidth(4, cfg); got != 1 {
		t.Errorf("CalculateItemWidth(4) = %d, want 1", got)
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name           string
		selected       int
		total          int
		viewportHeight int
		want           int
	}{
		{"all items fit", 5, 10, 20, 0},
		{"selection at top", 0, 50, 10, 0},
		{"selection in middle", 25, 50, 10, 20}, // 25 - 5 = 20
		{"selection near bottom clamps", 48, 50, 10, 40},
		{"selection near top clamps", 3, 50, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.viewportHeight)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewportHeight, got, tt.want)
			}
		})
	}
}
