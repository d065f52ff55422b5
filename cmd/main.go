package main

import (
	"chat-edit/auth"
	"chat-edit/authorization"
	"chat-edit/hooks"
	"chat-edit/infrastructure/api"
	"chat-edit/infrastructure/storage"
	"chat-edit/internal"
	"chat-edit/moderation"
	"chat-edit/observability"
	"chat-edit/policy"
	"chat-edit/projection"
	"chat-edit/runtime"
	"chat-edit/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes reported to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat-edit terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a server failure.
// Deferred cleanups run before main calls os.Exit.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine: the environment may already be set.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	messageRepository, err := storage.NewMessageRepository(db, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = messageRepository.Close() }()
	roomRepository, err := storage.NewRoomRepository(db, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = roomRepository.Close() }()
	userRepository := storage.NewUserRepository(db)
	privilegeRepository := storage.NewPrivilegeRepository(db)
	settingsRepository := storage.NewSettingsRepository(db)

	if err = settingsRepository.SeedDefaults(ctx, config.DefaultSettings()); err != nil {
		return exitRuntime, fmt.Errorf("seeding settings: %w", err)
	}

	// 3. Edit filters
	moderator, err := moderation.NewModerator(config.Words(), charReplacement, logger)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator: %w", err)
	}
	editFilter := hooks.NewChain(logger, hooks.FilterMessagingEdit).
		Register("censor", moderator.Transformer())

	// 4. Core services
	monitor := observability.NewMonitoringManager(logger)
	registry := runtime.NewRegistry(logger).WithMonitor(monitor)
	authorizer := authorization.NewAuthorizer(logger, messageRepository, userRepository,
		privilegeRepository, settingsRepository)
	editService := services.NewEditService(logger,
		policy.NewContentPolicy(settingsRepository),
		messageRepository,
		editFilter,
		roomRepository,
		projection.NewMessageRenderer(messageRepository, userRepository),
		registry,
	)
	chatService := services.NewChatService(authorizer, messageRepository, editService)

	// 5. HTTP Server
	issuer := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	router := api.NewRouter(logger, chatService, registry, issuer, api.RouterConfig{
		AllowedOrigins:       config.Origins(),
		ConnectionBufferSize: config.ConnectionBufferSize,
		Monitor:              monitor,
	})
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
