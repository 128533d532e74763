package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/plus3/gridfall/engine"
)

func main() {
	// Optional .env next to the binary; real env wins.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("GRIDFALL_LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	seed := envUint("GRIDFALL_SEED", uint64(time.Now().UnixNano()))
	scale := envInt("GRIDFALL_SCALE", 1)

	rules := engine.DefaultRules()
	session := engine.NewSession(rules, engine.NewBag(seed), logger)
	mapper := engine.NewMapper(rules)

	game := newGame(session, mapper)

	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetWindowTitle("gridfall")
	ebiten.SetTPS(ticksPerSecond)

	logger.Info("starting", "seed", seed, "tps", ticksPerSecond)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}

	stats := game.loop.Stats()
	logger.Info("stopped",
		"ticks", stats.TickCount,
		"avg_tick", stats.AvgDuration,
		"max_tick", stats.MaxDuration)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
		slog.Warn("ignoring invalid env value", "key", key, "value", v)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		slog.Warn("ignoring invalid env value", "key", key, "value", v)
	}
	return fallback
}
