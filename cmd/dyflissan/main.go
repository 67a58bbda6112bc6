package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"dyflissan/internal/bootstrap"
	"dyflissan/internal/delivery/terminal"
	repo "dyflissan/internal/repository"
	"dyflissan/internal/usecase/narrative"
)

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	graph := repo.NewDungeonStory()
	if err := graph.Validate(); err != nil {
		logger.Fatalw("Story graph is malformed", "error", err)
	}

	engine := narrative.NewEngine(graph, logger)
	session := terminal.NewSession(engine, logger, os.Stdin, os.Stdout, cfg.ShowBanner)

	if err := session.Run(ctx); err != nil {
		logger.Errorw("Session aborted", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

// handleShutdown stops the game on SIGINT/SIGTERM. Reading stdin blocks, so
// the process exits here instead of waiting for the session to notice.
func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	log.Sync()
	os.Exit(130)
}
