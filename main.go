package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lab1702/seabots/game"
	"github.com/lab1702/seabots/internal/config"
	"github.com/lab1702/seabots/internal/logging"
	"github.com/lab1702/seabots/server"
)

// terrainCellSize is the height map resolution in meters.
const terrainCellSize = 25

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	port := flag.String("port", "", "Server port, overrides listenAddr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		l := logging.New(os.Stderr, "info")
		l.Fatal().Err(err).Msg("Loading config")
	}
	if *port != "" {
		cfg.ListenAddr = ":" + *port
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)

	terrain := game.GenerateIslands(
		rand.New(rand.NewPCG(cfg.Arena.TerrainSeed, cfg.Arena.TerrainSeed)),
		cfg.Arena.WorldRadius, terrainCellSize, cfg.Arena.Islands,
	)

	arena, err := server.NewArena(cfg.Arena, logger, terrain)
	if err != nil {
		logger.Fatal().Err(err).Msg("Creating arena")
	}
	for i := 0; i < cfg.Arena.BotCount; i++ {
		if _, err := arena.AddBot(); err != nil {
			logger.Fatal().Err(err).Msg("Adding bot")
		}
	}

	hub := server.NewHub(logger)
	arena.OnFrame(hub.BroadcastFrame)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)
	go func() {
		if err := arena.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal().Err(err).Msg("Arena stopped")
		}
	}()

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.NewHandler(arena, hub),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info().
		Str("addr", cfg.ListenAddr).
		Int("bots", cfg.Arena.BotCount).
		Float32("worldRadius", cfg.Arena.WorldRadius).
		Int("tickRate", cfg.Arena.TickRate).
		Msg("Starting arena server")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info().Stringer("signal", sig).Msg("Shutting down server")

	// Stop ticking before closing connections
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown error")
	}

	logger.Info().Uint64("ticks", arena.Stats().Tick).Msg("Server stopped")
}
