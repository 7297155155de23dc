// Command server runs the Sentinel knowledge-graph demo API.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/causify-ai/sentinel-kg/pkg/api"
	"github.com/causify-ai/sentinel-kg/pkg/catalog"
	"github.com/causify-ai/sentinel-kg/pkg/config"
	"github.com/causify-ai/sentinel-kg/pkg/logging"
	"github.com/causify-ai/sentinel-kg/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	addr := flag.String("addr", "", "Listen address override")
	flag.Parse()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slogger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	reg := catalog.Default()
	slogger.Info("catalog loaded",
		"nodes", reg.NodeCount(),
		"edges", reg.EdgeCount(),
	)

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))

	apiServer, err := api.NewServer(cfg, reg, logger)
	if err != nil {
		slogger.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	done := make(chan struct{})
	defer close(done)
	apiServer.StartBackgroundTasks(done)

	gs := server.NewGracefulServer(cfg.ListenAddr, apiServer.Handler(), logger)
	slogger.Info("sentinel demo server starting",
		"addr", cfg.ListenAddr,
		"loading_delay", cfg.LoadingDelay.Std().String(),
	)
	if err := gs.Start(); err != nil {
		slogger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
