// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight    int
	StatusHeight    int
	PlayerBarHeight int
}

// ContentHeight is the height left for the page between the header and the
// status line plus player bar. It is never less than one row.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.PlayerBarHeight
	return max(height, 1)
}

// GridColumns returns how many cells of cellWidth fit in width, at least one.
func GridColumns(width, cellWidth int) int {
	if cellWidth <= 0 {
		return 1
	}
	return max(width/cellWidth, 1)
}

// GridRows returns how many rows of cellHeight fit in height, at least one.
func GridRows(height, cellHeight int) int {
	if cellHeight <= 0 {
		return 1
	}
	return max(height/cellHeight, 1)
}

// TrailingColumnWidth is the fixed width of a listing's last column.
const TrailingColumnWidth = 18

// ListColumns splits a listing row after its leading column: the title gets
// 40% of the remainder, the secondary column the rest and the trailing
// column a fixed width.
func ListColumns(width, leading int) (title, secondary, trailing int) {
	trailing = TrailingColumnWidth
	rest := max(width-leading-trailing, 10)
	title = rest * 2 / 5
	secondary = rest - title
	return title, secondary, trailing
}
