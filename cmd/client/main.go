package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/shelfsync/internal/client/api"
	"github.com/iudanet/shelfsync/internal/client/auth"
	"github.com/iudanet/shelfsync/internal/client/cli"
	"github.com/iudanet/shelfsync/internal/client/config"
	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/client/storage/boltdb"
	"github.com/iudanet/shelfsync/internal/client/storage/sqlite"
	syncsvc "github.com/iudanet/shelfsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// clientStorage объединяет хранилище прогресса и сессии одного файла БД
type clientStorage interface {
	storage.ProgressStorage
	storage.AuthStorage
	Close() error
}

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	quiet := flag.Bool("quiet", false, "Suppress non-fatal sync failure notices")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Флаги имеют приоритет над файлом конфигурации
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}

	logLevel := slog.LevelWarn
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Создаем контекст
	ctx := context.Background()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.Server.URL, cfg.HTTPTimeout())

	// Подставляем сохраненную сессию, если она есть
	if authData, err := store.GetAuth(ctx); err == nil {
		apiClient.SetCredentials(authData.AccessToken, authData.ClientID)
	}

	authService := auth.NewService(apiClient, store)
	syncService := syncsvc.NewService(apiClient, store, cfg.Sync.MaxRetries, cfg.BaseDelay(), logger)

	c := cli.New(authService, syncService, store, *quiet)
	c.Run(ctx, command, args[1:])
}

// openStorage открывает локальное хранилище выбранного backend
func openStorage(ctx context.Context, cfg *config.Config) (clientStorage, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.New(ctx, cfg.Storage.Path)
	default:
		return boltdb.New(ctx, cfg.Storage.Path)
	}
}

func printVersion() {
	fmt.Printf("ShelfSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
