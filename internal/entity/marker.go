package entity

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
)

// Marker is what a player leaves on a square. The zero value means the square is unmarked.
type Marker string

const (
	EmptyMarker Marker = ""

	MarkerX Marker = "X"
	MarkerO Marker = "O"
)

func (that Marker) IsEmpty() bool {
	return that == EmptyMarker
}

func (that Marker) String() string {
	return string(that)
}

// ValidateMarkers - checks that both markers are single visible non-digit characters and differ from each other.
func ValidateMarkers(first, second Marker) error {
	for _, marker := range []Marker{first, second} {
		if err := validateMarker(marker); err != nil {
			return err
		}
	}

	if first == second {
		return fmt.Errorf("%w: both players can't use %q", apperror.ErrInvalidMarker, first)
	}

	return nil
}

func validateMarker(marker Marker) error {
	if utf8.RuneCountInString(string(marker)) != 1 {
		return fmt.Errorf("%w: %q must be a single character", apperror.ErrInvalidMarker, marker)
	}

	r, _ := utf8.DecodeRuneInString(string(marker))
	if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Errorf("%w: %q is not a printable character", apperror.ErrInvalidMarker, marker)
	}

	// digits would read like position numbers on the board
	if unicode.IsDigit(r) {
		return fmt.Errorf("%w: %q is a digit", apperror.ErrInvalidMarker, marker)
	}

	return nil
}
