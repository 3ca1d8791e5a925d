package models

// Cell codes used by the game's power grid encoding.
const (
	// CellUnprotected marks a generating cell with no shield coverage.
	CellUnprotected = 0
	// CellProtected marks a generating cell under shield coverage.
	CellProtected = 1
	// CellBlocked marks a cell that generates nothing.
	CellBlocked = 4
)

// Grid is a row-major cell matrix. It carries either a component footprint
// shape or a reactor/aux power layout; the cell codes above only apply to
// power layouts.
type Grid [][]int

// PowerStats aggregates the generating cells of a power grid.
type PowerStats struct {
	PowerGeneration  int `json:"powerGeneration"`
	ProtectedPower   int `json:"protectedPower"`
	UnprotectedPower int `json:"unprotectedPower"`
}

// Stats counts the generating cells of a power grid. Cells holding any code
// other than CellUnprotected or CellProtected contribute nothing, the same
// as blocked cells. Ragged and empty grids are fine; every row contributes
// its own cells.
func (g Grid) Stats() PowerStats {
	var s PowerStats
	for _, row := range g {
		for _, cell := range row {
			switch cell {
			case CellUnprotected:
				s.UnprotectedPower++
				s.PowerGeneration++
			case CellProtected:
				s.ProtectedPower++
				s.PowerGeneration++
			}
		}
	}
	return s
}

// UniformGrid builds a rows by cols grid with every cell set to value. Each
// call returns a fresh grid, so callers can mutate the result freely.
func UniformGrid(rows, cols, value int) Grid {
	g := make(Grid, rows)
	for i := range g {
		row := make([]int, cols)
		for j := range row {
			row[j] = value
		}
		g[i] = row
	}
	return g
}
