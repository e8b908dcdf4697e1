package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/rocketscienceinc/gridgame/internal/repository"
	"github.com/rocketscienceinc/gridgame/internal/repository/storage"
	"github.com/rocketscienceinc/gridgame/internal/service"
	"github.com/rocketscienceinc/gridgame/internal/usecase"
	"github.com/rocketscienceinc/gridgame/transport/console"
)

var (
	ErrAddrNotFound          = errors.New("redis address string is empty")
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
)

const markerModeCustom = "custom"

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	matchRepo, closeRepo, err := initMatchRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close match storage", "error", err)
		}
	}()

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("random source seeded", "seed", seed)

	botService := service.NewBotService(rand.New(rand.NewSource(seed)))
	matchUseCase := usecase.NewMatchManager(logger, matchRepo, botService, rand.New(rand.NewSource(seed+1)))

	messages, err := console.LoadMessages(conf.Console.MessagesPath)
	if err != nil {
		return err
	}

	game := console.New(logger, matchUseCase, messages, os.Stdin, os.Stdout, console.Options{
		GridSize:      conf.Game.GridSize,
		AskGridSize:   conf.Game.AskGridSize,
		WinTarget:     conf.Game.WinTarget,
		FirstPlayer:   conf.Game.FirstPlayer,
		CustomMarkers: conf.Game.MarkerMode == markerModeCustom,
		ComputerName:  conf.Game.ComputerName,
		Pause:         conf.Console.Pause,
		ClearScreen:   conf.Console.ClearScreen,
	})

	// run console game
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game", "storage", conf.Storage.Backend)
		consoleErrCh <- game.Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console game error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func initMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, func() error, error) {
	switch conf.Storage.Backend {
	case config.StorageMemory, "":
		return repository.NewMemoryMatchRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewMatchRepository(redisStorage.Connection, conf.Storage.TTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownStorageBackend, conf.Storage.Backend)
	}
}
