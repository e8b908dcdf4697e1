package entity

const DefaultWinTarget = 3

// Match is a sequence of rounds played until a player reaches WinTarget wins.
type Match struct {
	ID           string  `json:"id"`
	Human        *Player `json:"human"`
	Computer     *Player `json:"computer"`
	Game         *Game   `json:"game"`
	WinTarget    int     `json:"win_target"`
	RoundsPlayed int     `json:"rounds_played"`
	Ties         int     `json:"ties"`

	// LastComputerMove is the position the computer marked during the latest call, 0 if none.
	LastComputerMove int `json:"last_computer_move,omitempty"`
}

func (that *Match) Players() []*Player {
	return []*Player{that.Human, that.Computer}
}

func (that *Match) PlayerByMark(mark Marker) (*Player, bool) {
	for _, player := range that.Players() {
		if player != nil && player.Mark == mark {
			return player, true
		}
	}

	return nil, false
}

// Leader - the player whose score reached the win target, if any.
func (that *Match) Leader() (*Player, bool) {
	for _, player := range that.Players() {
		if player != nil && player.Score >= that.WinTarget {
			return player, true
		}
	}

	return nil, false
}

func (that *Match) IsOver() bool {
	_, ok := that.Leader()
	return ok
}

func (that *Match) ResetScores() {
	for _, player := range that.Players() {
		if player != nil {
			player.ResetScore()
		}
	}

	that.RoundsPlayed = 0
	that.Ties = 0
}
