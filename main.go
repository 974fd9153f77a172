package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gloamspire/internal/game"
	"gloamspire/internal/logger"
	"gloamspire/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err == nil {
		logger.Log.Debug(".env loaded.")
	}
	logger.Init()

	var seed int64
	var radius int
	var revealRooms bool
	flag.Int64Var(&seed, "seed", 0, "world seed (0 for random)")
	flag.IntVar(&radius, "radius", envInt("GLOAMSPIRE_LIGHT_RADIUS", 0), "base light radius (0 for default)")
	flag.BoolVar(&revealRooms, "reveal-rooms", false, "start in room-reveal sight mode")
	flag.Parse()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry disabled.")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Warn("Telemetry shutdown failed.")
			}
		}()
	}

	g, err := game.New(game.Options{Seed: seed, LightRadius: radius, RevealRooms: revealRooms})
	if err != nil {
		logger.Log.WithError(err).Error("Could not start game.")
		os.Exit(1)
	}
	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Game ended with error.")
		os.Exit(1)
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
