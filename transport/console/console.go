package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/usecase"
)

var ErrInputClosed = errors.New("input closed")

type uMatch interface {
	CreateMatch(ctx context.Context, settings usecase.MatchSettings) (*entity.Match, error)
	HumanTurn(ctx context.Context, matchID string, position int) (*entity.Match, error)
	NextRound(ctx context.Context, matchID string) (*entity.Match, error)
	PlayAgain(ctx context.Context, matchID string) (*entity.Match, error)
	Reconfigure(ctx context.Context, matchID string, sideLength int) (*entity.Match, error)
	EndMatch(ctx context.Context, matchID string) error
}

// Options are the console side of the game configuration.
type Options struct {
	GridSize      int
	AskGridSize   bool
	WinTarget     int
	FirstPlayer   string
	CustomMarkers bool
	ComputerName  string
	Pause         time.Duration
	ClearScreen   bool
}

type Console struct {
	logger   *slog.Logger
	uMatch   uMatch
	messages *Messages
	options  Options

	scanner *bufio.Scanner
	out     io.Writer
	note    string

	handlers map[string]func(ctx context.Context, match *entity.Match) (*entity.Match, error)
}

func New(logger *slog.Logger, uMatch uMatch, messages *Messages, in io.Reader, out io.Writer, options Options) *Console {
	console := &Console{
		logger:   logger.With("component", "console"),
		uMatch:   uMatch,
		messages: messages,
		options:  options,

		scanner: bufio.NewScanner(in),
		out:     out,

		handlers: make(map[string]func(context.Context, *entity.Match) (*entity.Match, error)),
	}

	console.handlers[entity.StatusAwaitingHumanMove] = console.handleHumanMove
	console.handlers[entity.StatusRoundOver] = console.handleRoundOver

	return console
}

// Run - plays matches until the player declines another one or the input is closed.
func (that *Console) Run(ctx context.Context) error {
	err := that.run(ctx)
	if errors.Is(err, ErrInputClosed) {
		that.logger.Info("input closed, leaving the game")
		return nil
	}

	return err
}

func (that *Console) run(ctx context.Context) error {
	that.println(fmt.Sprintf(that.messages.Welcome, that.winTarget()))

	settings, err := that.askSettings()
	if err != nil {
		return err
	}

	match, err := that.uMatch.CreateMatch(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	matchID := match.ID
	defer func() {
		if endErr := that.uMatch.EndMatch(context.WithoutCancel(ctx), matchID); endErr != nil {
			that.logger.Error("failed to end match", "matchID", matchID, "error", endErr)
		}
	}()

	that.noteComputerMove(ctx, match)

	for {
		if match, err = that.playMatch(ctx, match); err != nil {
			return err
		}

		answer, err := that.ask(that.messages.PlayAgain)
		if err != nil {
			return err
		}

		if !isYes(answer) {
			that.println(that.messages.Goodbye)
			return nil
		}

		if match, err = that.restartMatch(ctx, match); err != nil {
			return err
		}
	}
}

// playMatch - dispatches on the match status until the match is over.
func (that *Console) playMatch(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		that.render(match)

		if match.Game.IsMatchOver() {
			that.announceRound(match)

			if leader, ok := match.Leader(); ok {
				that.println(fmt.Sprintf(that.messages.MatchWon, leader.Name))
			}

			return match, nil
		}

		handler, ok := that.handlers[match.Game.Status]
		if !ok {
			return nil, fmt.Errorf("%w: %s", entity.ErrUnknownGameStatus, match.Game.Status)
		}

		next, err := handler(ctx, match)
		if err != nil {
			return nil, err
		}

		match = next
	}
}

// handleHumanMove - asks for a square until the move is accepted.
func (that *Console) handleHumanMove(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	prompt := fmt.Sprintf(that.messages.AskMove, joinOr(match.Game.Board.OpenPositions(), that.messages.Or))

	for {
		position, err := that.askNumber(prompt)
		if err != nil {
			return nil, err
		}

		next, err := that.uMatch.HumanTurn(ctx, match.ID, position)

		switch {
		case errors.Is(err, apperror.ErrInvalidPosition):
			that.println(that.messages.InvalidPosition)
		case errors.Is(err, apperror.ErrSquareOccupied):
			that.println(that.messages.SquareOccupied)
		case err != nil:
			return nil, fmt.Errorf("failed to make turn: %w", err)
		default:
			that.noteComputerMove(ctx, next)
			return next, nil
		}

		that.logger.Debug("move rejected", "matchID", match.ID, "position", position, "error", err)
	}
}

func (that *Console) handleRoundOver(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	that.announceRound(match)

	if _, err := that.ask(that.messages.NextRound); err != nil {
		return nil, err
	}

	next, err := that.uMatch.NextRound(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to start next round: %w", err)
	}

	that.noteComputerMove(ctx, next)

	return next, nil
}

func (that *Console) restartMatch(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	if that.options.AskGridSize {
		for {
			sideLength, err := that.askGridSize(match.Game.Board.SideLength())
			if err != nil {
				return nil, err
			}

			_, err = that.uMatch.Reconfigure(ctx, match.ID, sideLength)
			if errors.Is(err, apperror.ErrInvalidConfiguration) {
				that.println(that.messages.InvalidGridSize)
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("failed to reconfigure match: %w", err)
			}

			break
		}
	}

	next, err := that.uMatch.PlayAgain(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to restart match: %w", err)
	}

	that.noteComputerMove(ctx, next)

	return next, nil
}

func (that *Console) askSettings() (usecase.MatchSettings, error) {
	settings := usecase.MatchSettings{
		SideLength:   that.options.GridSize,
		WinTarget:    that.options.WinTarget,
		FirstPlayer:  that.options.FirstPlayer,
		HumanMark:    entity.MarkerX,
		ComputerName: that.options.ComputerName,
		ComputerMark: entity.MarkerO,
	}

	name, err := that.ask(that.messages.AskName)
	if err != nil {
		return settings, err
	}
	settings.HumanName = name

	if that.options.AskGridSize {
		if settings.SideLength, err = that.askGridSize(that.options.GridSize); err != nil {
			return settings, err
		}
	}

	if that.options.CustomMarkers {
		if settings.HumanMark, settings.ComputerMark, err = that.askMarkers(); err != nil {
			return settings, err
		}
	}

	return settings, nil
}

// askGridSize - an empty answer keeps fallback.
func (that *Console) askGridSize(fallback int) (int, error) {
	prompt := fmt.Sprintf(that.messages.AskGridSize, fallback)

	for {
		answer, err := that.ask(prompt)
		if err != nil {
			return 0, err
		}

		sideLength := fallback
		if answer != "" {
			if sideLength, err = strconv.Atoi(answer); err != nil {
				that.println(that.messages.NotANumber)
				continue
			}
		}

		if err = entity.ValidateSideLength(sideLength); err != nil {
			that.println(that.messages.InvalidGridSize)
			continue
		}

		return sideLength, nil
	}
}

func (that *Console) askMarkers() (entity.Marker, entity.Marker, error) {
	for {
		human, err := that.ask(that.messages.AskHumanMarker)
		if err != nil {
			return entity.EmptyMarker, entity.EmptyMarker, err
		}

		computer, err := that.ask(that.messages.AskComputerMarker)
		if err != nil {
			return entity.EmptyMarker, entity.EmptyMarker, err
		}

		humanMark, computerMark := entity.Marker(human), entity.Marker(computer)
		if err = entity.ValidateMarkers(humanMark, computerMark); err != nil {
			that.logger.Debug("markers rejected", "error", err)
			that.println(that.messages.InvalidMarker)
			continue
		}

		return humanMark, computerMark, nil
	}
}

func (that *Console) askNumber(prompt string) (int, error) {
	for {
		answer, err := that.ask(prompt)
		if err != nil {
			return 0, err
		}

		number, err := strconv.Atoi(answer)
		if err == nil {
			return number, nil
		}

		that.println(that.messages.NotANumber)
	}
}

func (that *Console) ask(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", ErrInputClosed
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}

func (that *Console) render(match *entity.Match) {
	if that.options.ClearScreen {
		fmt.Fprint(that.out, clearScreen)
	}

	that.printScore(match)
	that.println("")
	renderBoard(that.out, match.Game.Board)
	that.println("")

	if that.note != "" {
		that.println(that.note)
		that.note = ""
	}
}

func (that *Console) announceRound(match *entity.Match) {
	switch {
	case match.Game.Tie:
		that.println(that.messages.RoundTied)
	default:
		if winner, ok := match.PlayerByMark(match.Game.Winner); ok {
			that.println(fmt.Sprintf(that.messages.RoundWon, winner.Name))
		}
	}
}

func (that *Console) printScore(match *entity.Match) {
	that.println(fmt.Sprintf(that.messages.Score,
		match.Human.Name, match.Human.Score, match.Computer.Name, match.Computer.Score, match.Ties))
}

// noteComputerMove - pauses as if the computer was thinking and remembers its move for the next render.
func (that *Console) noteComputerMove(ctx context.Context, match *entity.Match) {
	if match.LastComputerMove == 0 {
		return
	}

	that.pause(ctx)
	that.note = fmt.Sprintf(that.messages.ComputerMoved, match.Computer.Name, match.LastComputerMove)
}

func (that *Console) pause(ctx context.Context) {
	if that.options.Pause <= 0 {
		return
	}

	timer := time.NewTimer(that.options.Pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (that *Console) winTarget() int {
	if that.options.WinTarget == 0 {
		return entity.DefaultWinTarget
	}

	return that.options.WinTarget
}

func (that *Console) println(line string) {
	fmt.Fprintln(that.out, line)
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
