package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"weather-relay/configs"
	"weather-relay/internal/application/server"
	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
)

// @title Weather Relay API
// @version 1.0
// @description Relays current conditions and forecasts from the weather provider in a simplified shape.
func main() {
	defer func() { _ = log.Sync() }()

	env, err := configs.LoadEnv()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}
	if !env.DotEnvLoaded {
		log.Debug(msg.GetMessage("app.env-missing", ".env"))
	}

	cfg, err := configs.LoadAppConfig(env.PropertiesFilePath)
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}

	log.Info(msg.GetMessage("app.start", cfg.Name))
	if cfg.WeatherAPI.Key == "" {
		log.Warn(msg.GetMessage("app.api-key-missing"))
	}

	e, err := server.New(cfg)
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info(msg.GetMessage("app.started", cfg.Name, cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop", cfg.Name))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.stop-fail", err))
		return
	}
	log.Info(msg.GetMessage("app.stopped", cfg.Name))
}
