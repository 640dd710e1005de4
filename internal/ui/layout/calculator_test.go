package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name   string
		height int
		opts   ContentOpts
		want   int
	}{
		{
			name:   "compact player",
			height: 40,
			opts:   ContentOpts{HeaderHeight: 2, StatusHeight: 1, PlayerBarHeight: 3},
			want:   34,
		},
		{
			name:   "expanded player",
			height: 40,
			opts:   ContentOpts{HeaderHeight: 2, StatusHeight: 1, PlayerBarHeight: 6},
			want:   31,
		},
		{
			name:   "tiny terminal clamps to one row",
			height: 4,
			opts:   ContentOpts{HeaderHeight: 2, StatusHeight: 1, PlayerBarHeight: 6},
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.height, tt.opts); got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGridColumnsAndRows(t *testing.T) {
	tests := []struct {
		size, cell, want int
	}{
		{100, 28, 3},
		{20, 28, 1},
		{56, 28, 2},
		{10, 0, 1},
	}
	for _, tt := range tests {
		if got := GridColumns(tt.size, tt.cell); got != tt.want {
			t.Errorf("GridColumns(%d, %d) = %d, want %d", tt.size, tt.cell, got, tt.want)
		}
		if got := GridRows(tt.size, tt.cell); got != tt.want {
			t.Errorf("GridRows(%d, %d) = %d, want %d", tt.size, tt.cell, got, tt.want)
		}
	}
}

func TestListColumns(t *testing.T) {
	title, second, trailing := ListColumns(102, 4)
	if trailing != TrailingColumnWidth {
		t.Errorf("trailing = %d, want %d", trailing, TrailingColumnWidth)
	}
	if title != 32 || second != 48 {
		t.Errorf("title, second = %d, %d, want 32, 48", title, second)
	}

	title, second, _ = ListColumns(10, 4)
	if title+second != 10 {
		t.Errorf("narrow widths = %d + %d, want the minimum 10", title, second)
	}
}
