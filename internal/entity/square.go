package entity

import "github.com/rocketscienceinc/gridgame/internal/apperror"

// Square is a single cell of the board.
type Square struct {
	Marker Marker `json:"marker"`
}

func (that *Square) IsEmpty() bool {
	return that.Marker.IsEmpty()
}

// Mark - places the marker, an occupied square is never overwritten.
func (that *Square) Mark(marker Marker) error {
	if !that.IsEmpty() {
		return apperror.ErrSquareOccupied
	}

	that.Marker = marker

	return nil
}
