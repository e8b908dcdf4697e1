package entity

type Player struct {
	Name       string `json:"name"`
	Mark       Marker `json:"mark"`
	Score      int    `json:"score"`
	IsComputer bool   `json:"is_computer,omitempty"`
}

func NewHumanPlayer(name string, mark Marker) *Player {
	return &Player{Name: name, Mark: mark}
}

func NewComputerPlayer(name string, mark Marker) *Player {
	return &Player{Name: name, Mark: mark, IsComputer: true}
}

func (that *Player) AddWin() {
	that.Score++
}

func (that *Player) ResetScore() {
	that.Score = 0
}
