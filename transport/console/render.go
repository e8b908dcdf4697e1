package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gridgame/internal/entity"
)

const clearScreen = "\033[H\033[2J"

// renderBoard - draws the grid row by row, open squares show their position number.
func renderBoard(w io.Writer, board *entity.Board) {
	width := len(strconv.Itoa(len(board.Positions())))
	separator := strings.Repeat("-", width+2)

	rows := board.Rows()
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, position := range row {
			marker, _ := board.MarkerAt(position)

			label := marker.String()
			if marker.IsEmpty() {
				label = strconv.Itoa(position)
			}

			cells[j] = fmt.Sprintf(" %*s ", width, label)
		}

		fmt.Fprintln(w, strings.Join(cells, "|"))

		if i < len(rows)-1 {
			fmt.Fprintln(w, strings.Repeat(separator+"+", len(row)-1)+separator)
		}
	}
}

// joinOr - "1, 2 or 3".
func joinOr(positions []int, or string) string {
	words := make([]string, len(positions))
	for i, position := range positions {
		words[i] = strconv.Itoa(position)
	}

	if len(words) < 2 {
		return strings.Join(words, "")
	}

	return strings.Join(words[:len(words)-1], ", ") + " " + or + " " + words[len(words)-1]
}
