package entity

import "slices"

// Line is an ordered run of sideLength positions checked together for a win or threat.
type Line []int

func (that *Board) Rows() []Line {
	rows := make([]Line, 0, that.sideLength)
	for start := 0; start < len(that.positions); start += that.sideLength {
		rows = append(rows, slices.Clone(that.positions[start:start+that.sideLength]))
	}

	return rows
}

// Columns - the transpose of Rows.
func (that *Board) Columns() []Line {
	rows := that.Rows()

	columns := make([]Line, that.sideLength)
	for i := range columns {
		columns[i] = make(Line, 0, that.sideLength)
		for _, row := range rows {
			columns[i] = append(columns[i], row[i])
		}
	}

	return columns
}

// Diagonal - element i of row i.
func (that *Board) Diagonal() Line {
	return pickDiagonal(that.Rows())
}

// AntiDiagonal - the rows in reverse order, then element i of the i-th of them.
func (that *Board) AntiDiagonal() Line {
	rows := that.Rows()
	slices.Reverse(rows)

	return pickDiagonal(rows)
}

func pickDiagonal(rows []Line) Line {
	line := make(Line, 0, len(rows))
	for i, row := range rows {
		line = append(line, row[i])
	}

	return line
}

// WinningLines - rows, columns, the diagonal and the anti-diagonal, 2*sideLength+2 in total.
func (that *Board) WinningLines() []Line {
	lines := make([]Line, 0, 2*that.sideLength+2)
	lines = append(lines, that.Rows()...)
	lines = append(lines, that.Columns()...)

	if that.sideLength > 0 {
		lines = append(lines, that.Diagonal(), that.AntiDiagonal())
	}

	return lines
}

func (that *Board) LineMarkers(line Line) []Marker {
	markers := make([]Marker, len(line))
	for i, position := range line {
		if square, ok := that.squares[position]; ok {
			markers[i] = square.Marker
		}
	}

	return markers
}

// IsWinningLine - every marker is set and all of them are the same.
func IsWinningLine(markers []Marker) bool {
	if len(markers) == 0 {
		return false
	}

	for _, marker := range markers {
		if marker.IsEmpty() || marker != markers[0] {
			return false
		}
	}

	return true
}

// IsThreatLine - all but one marker equal marker and the remaining one is empty.
func IsThreatLine(markers []Marker, marker Marker) bool {
	if marker.IsEmpty() || len(markers) == 0 {
		return false
	}

	own, empty := 0, 0
	for _, current := range markers {
		switch current {
		case marker:
			own++
		case EmptyMarker:
			empty++
		}
	}

	return own == len(markers)-1 && empty == 1
}

// ThreatPosition - the single open position of a threat line for marker.
func ThreatPosition(line Line, markers []Marker, marker Marker) (int, bool) {
	if len(line) != len(markers) || !IsThreatLine(markers, marker) {
		return 0, false
	}

	for i, current := range markers {
		if current.IsEmpty() {
			return line[i], true
		}
	}

	return 0, false
}
