package main

import (
	"os"

	"idea-feasibility-backend/internal/bootstrap"
	"idea-feasibility-backend/internal/shared/config"
	"idea-feasibility-backend/internal/shared/server"
	"idea-feasibility-backend/internal/shared/telemetry"
)

func main() {
	defer telemetry.Sync()

	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("api.bootstrap_failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("api.starting", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("api.server_error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
