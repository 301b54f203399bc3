package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/EgorLis/govts/pkg/vts"
)

func mustRead[T any](path string, out *T) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Fatal(err)
	}
}

// applyEnv накладывает переменные окружения поверх конфига из файла.
func applyEnv(cfg *vts.Config) {
	if v := os.Getenv("VTS_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("VTS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("VTS_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
}

func main() {
	_ = godotenv.Load()

	var cfg vts.Config
	mustRead("conf/vtsconfig.json", &cfg)
	applyEnv(&cfg)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	client := vts.New(cfg)
	client.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := client.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("start failed")
	}
	defer client.Close()

	client.OnEvent(vts.EventModelMoved, func(ev *vts.Event) error {
		d := ev.Data.(*vts.ModelMovedEventData)
		logger.Info().
			Str("model", d.ModelName).
			Float64("x", d.ModelPosition.PositionX).
			Float64("y", d.ModelPosition.PositionY).
			Msg("model moved")
		return nil
	})
	client.OnEvent(vts.EventHotkeyTriggered, func(ev *vts.Event) error {
		d := ev.Data.(*vts.HotkeyTriggeredEventData)
		logger.Info().Str("hotkey", d.HotkeyName).Msg("hotkey triggered")
		return nil
	})

	if _, err := client.SubscribeEvent(ctx, vts.EventModelMoved, nil); err != nil {
		logger.Fatal().Err(err).Msg("subscribe failed")
	}
	if _, err := client.SubscribeEvent(ctx, vts.EventHotkeyTriggered, nil); err != nil {
		logger.Fatal().Err(err).Msg("subscribe failed")
	}

	stats, err := client.Statistics(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("statistics failed")
	}
	logger.Info().
		Str("version", stats.VTubeStudioVersion).
		Int64("uptime_ms", stats.Uptime).
		Int("framerate", stats.Framerate).
		Msg("connected")

	logger.Info().Msg("running… press Ctrl+C to stop")
	<-ctx.Done()
}
