package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/tictactoe"
)

const (
	defaultHumanName    = "Player"
	defaultComputerName = "Computer"
)

const (
	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"
	FirstPlayerRandom   = "random"
)

var (
	ErrInvalidWinTarget   = errors.New("win target must be at least 1")
	ErrUnknownFirstPlayer = errors.New("unknown first player")
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type bot interface {
	MakeTurn(game *entity.Game) (int, error)
}

// MatchSettings is everything a new match is configured with.
type MatchSettings struct {
	SideLength   int
	WinTarget    int
	FirstPlayer  string
	HumanName    string
	HumanMark    entity.Marker
	ComputerName string
	ComputerMark entity.Marker
}

type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	bot       bot
	rnd       *rand.Rand
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, bot bot, rnd *rand.Rand) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match"),

		matchRepo: matchRepo,
		bot:       bot,
		rnd:       rnd,
	}
}

// CreateMatch - validates the settings and starts the first round. When the computer opens,
// its move is already on the board of the returned match.
func (that *MatchManager) CreateMatch(ctx context.Context, settings MatchSettings) (*entity.Match, error) {
	if settings.HumanName == "" {
		settings.HumanName = defaultHumanName
	}

	if settings.ComputerName == "" {
		settings.ComputerName = defaultComputerName
	}

	if settings.WinTarget == 0 {
		settings.WinTarget = entity.DefaultWinTarget
	}

	if settings.WinTarget < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWinTarget, settings.WinTarget)
	}

	if err := entity.ValidateMarkers(settings.HumanMark, settings.ComputerMark); err != nil {
		return nil, fmt.Errorf("failed to assign markers: %w", err)
	}

	board, err := entity.NewBoard(settings.SideLength)
	if err != nil {
		return nil, fmt.Errorf("failed to configure board: %w", err)
	}

	firstTurn, err := that.resolveFirstTurn(settings)
	if err != nil {
		return nil, err
	}

	match := &entity.Match{
		ID:        uuid.NewString(),
		Human:     entity.NewHumanPlayer(settings.HumanName, settings.HumanMark),
		Computer:  entity.NewComputerPlayer(settings.ComputerName, settings.ComputerMark),
		Game:      tictactoe.NewGame(board, settings.HumanMark, settings.ComputerMark, firstTurn),
		WinTarget: settings.WinTarget,
	}

	if err = that.openRound(match); err != nil {
		return nil, err
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	that.logger.Info("match created",
		"matchID", match.ID, "sideLength", settings.SideLength, "winTarget", match.WinTarget, "firstTurn", firstTurn)

	return match, nil
}

// HumanTurn - applies the human move and, if the round goes on, the computer's reply.
func (that *MatchManager) HumanTurn(ctx context.Context, matchID string, position int) (*entity.Match, error) {
	log := that.logger.With("method", "HumanTurn", "matchID", matchID)

	match, err := that.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(match.Game, match.Human.Mark, position); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("human marked square", "position", position)

	match.LastComputerMove = 0
	if match.Game.IsComputerTurn() {
		if err = that.computerTurn(match); err != nil {
			return nil, err
		}
	}

	if match.Game.IsRoundOver() {
		that.settleRound(match)
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// NextRound - clears the board after a finished round, scores are kept.
func (that *MatchManager) NextRound(ctx context.Context, matchID string) (*entity.Match, error) {
	match, err := that.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	switch {
	case match.Game.IsMatchOver():
		return nil, apperror.ErrMatchOver
	case !match.Game.IsRoundOver():
		return nil, apperror.ErrRoundInProgress
	}

	if err = that.restartRound(match); err != nil {
		return nil, err
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// PlayAgain - starts the match over with zero scores and the same configuration.
func (that *MatchManager) PlayAgain(ctx context.Context, matchID string) (*entity.Match, error) {
	match, err := that.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.Game.IsMatchOver() {
		return nil, apperror.ErrMatchInProgress
	}

	match.ResetScores()

	if err = that.restartRound(match); err != nil {
		return nil, err
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	that.logger.Info("match restarted", "matchID", match.ID)

	return match, nil
}

// Reconfigure - changes the board size between matches, the new size applies from PlayAgain on.
func (that *MatchManager) Reconfigure(ctx context.Context, matchID string, sideLength int) (*entity.Match, error) {
	match, err := that.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.Game.IsMatchOver() {
		return nil, apperror.ErrMatchInProgress
	}

	if err = match.Game.Board.Configure(sideLength); err != nil {
		return nil, fmt.Errorf("failed to configure board: %w", err)
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	return match, nil
}

func (that *MatchManager) EndMatch(ctx context.Context, matchID string) error {
	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	that.logger.Info("match ended", "matchID", matchID)

	return nil
}

func (that *MatchManager) resolveFirstTurn(settings MatchSettings) (entity.Marker, error) {
	switch settings.FirstPlayer {
	case FirstPlayerHuman, "":
		return settings.HumanMark, nil
	case FirstPlayerComputer:
		return settings.ComputerMark, nil
	case FirstPlayerRandom:
		if that.rnd.Intn(2) == 0 {
			return settings.HumanMark, nil
		}
		return settings.ComputerMark, nil
	default:
		return entity.EmptyMarker, fmt.Errorf("%w: %s", ErrUnknownFirstPlayer, settings.FirstPlayer)
	}
}

func (that *MatchManager) restartRound(match *entity.Match) error {
	if err := tictactoe.ResetGame(match.Game); err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	match.LastComputerMove = 0

	return that.openRound(match)
}

// openRound - lets the computer move first when the round is its to open.
func (that *MatchManager) openRound(match *entity.Match) error {
	if !match.Game.IsComputerTurn() {
		return nil
	}

	return that.computerTurn(match)
}

func (that *MatchManager) computerTurn(match *entity.Match) error {
	position, err := that.bot.MakeTurn(match.Game)
	if err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	match.LastComputerMove = position

	that.logger.Debug("computer marked square", "matchID", match.ID, "position", position)

	return nil
}

// settleRound - attributes the finished round and closes the match once a target is reached.
func (that *MatchManager) settleRound(match *entity.Match) {
	log := that.logger.With("method", "settleRound", "matchID", match.ID)

	match.RoundsPlayed++

	if match.Game.Tie {
		match.Ties++
		log.Info("round tied", "round", match.RoundsPlayed)
	} else if winner, ok := match.PlayerByMark(match.Game.Winner); ok {
		winner.AddWin()
		log.Info("round won", "round", match.RoundsPlayed, "winner", winner.Name, "score", winner.Score)
	}

	if leader, ok := match.Leader(); ok {
		match.Game.Status = entity.StatusMatchOver
		log.Info("match over", "winner", leader.Name,
			"humanScore", match.Human.Score, "computerScore", match.Computer.Score)
	}
}

func (that *MatchManager) updateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed update match: %w", err)
	}

	return nil
}
