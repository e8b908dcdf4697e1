package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("grid size must be an odd number of at least 3")
	ErrInvalidPosition      = errors.New("position is outside the grid")
	ErrSquareOccupied       = errors.New("square is already occupied")
	ErrInvalidMarker        = errors.New("invalid marker")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrRoundOver            = errors.New("round is already over")
	ErrRoundInProgress      = errors.New("round is still in progress")
	ErrMatchOver            = errors.New("match is already over")
	ErrMatchInProgress      = errors.New("match is still in progress")
)
