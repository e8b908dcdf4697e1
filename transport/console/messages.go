package console

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Messages holds every line the console shows. The defaults are English, a yml file can replace any of them.
type Messages struct {
	Welcome           string `yaml:"welcome" env-default:"Welcome to Tic-Tac-Toe! The first to win %d rounds takes the match."`
	AskName           string `yaml:"ask-name" env-default:"What's your name? "`
	AskGridSize       string `yaml:"ask-grid-size" env-default:"Choose an odd grid size of at least 3 (Enter for %d): "`
	InvalidGridSize   string `yaml:"invalid-grid-size" env-default:"The grid size must be an odd number of at least 3."`
	AskHumanMarker    string `yaml:"ask-human-marker" env-default:"Pick your marker, a single character: "`
	AskComputerMarker string `yaml:"ask-computer-marker" env-default:"Pick the computer's marker: "`
	InvalidMarker     string `yaml:"invalid-marker" env-default:"Markers must be two different single characters that aren't digits or spaces."`
	AskMove           string `yaml:"ask-move" env-default:"Choose a square (%s): "`
	NotANumber        string `yaml:"not-a-number" env-default:"Please enter a number."`
	InvalidPosition   string `yaml:"invalid-position" env-default:"That square isn't on the board."`
	SquareOccupied    string `yaml:"square-occupied" env-default:"That square is already taken."`
	ComputerMoved     string `yaml:"computer-moved" env-default:"%s marked square %d."`
	RoundWon          string `yaml:"round-won" env-default:"%s won the round!"`
	RoundTied         string `yaml:"round-tied" env-default:"It's a tie."`
	Score             string `yaml:"score" env-default:"%s: %d | %s: %d | Ties: %d"`
	MatchWon          string `yaml:"match-won" env-default:"%s won the match!"`
	NextRound         string `yaml:"next-round" env-default:"Press Enter to start the next round."`
	PlayAgain         string `yaml:"play-again" env-default:"Play again? (y/n): "`
	Goodbye           string `yaml:"goodbye" env-default:"Thanks for playing. Goodbye!"`
	Or                string `yaml:"or" env-default:"or"`
}

// LoadMessages - the built-in texts, overridden by the file at path when one is given.
func LoadMessages(path string) (*Messages, error) {
	messages := &Messages{}

	if path == "" {
		if err := cleanenv.ReadEnv(messages); err != nil {
			return nil, fmt.Errorf("failed to load default messages: %w", err)
		}

		return messages, nil
	}

	if err := cleanenv.ReadConfig(path, messages); err != nil {
		return nil, fmt.Errorf("failed to load messages file: %w", err)
	}

	return messages, nil
}
