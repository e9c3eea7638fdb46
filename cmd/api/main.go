// @title           DDR Generator API
// @version         1.0
// @description     Turns an inspection report and a thermal report into a Detailed Diagnostic Report
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/data/artifacts"
	"github.com/akolanti/DDRGenerator/internal/data/store"
	"github.com/akolanti/DDRGenerator/internal/handlers"
	"github.com/akolanti/DDRGenerator/internal/mcpserver"
	"github.com/akolanti/DDRGenerator/internal/middleware"
	"github.com/akolanti/DDRGenerator/internal/report"
	"github.com/akolanti/DDRGenerator/internal/server"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

var (
	configPath string
	listenAddr string
)

func main() {
	//config
	flag.StringVar(&configPath, "config", ".", "directory holding config.yaml")
	flag.StringVar(&listenAddr, "listen-addr", "", "server listen address, overrides server.listen_addr")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger_i.NewLogger("main").Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if listenAddr != "" {
		cfg.Server.ListenAddr = listenAddr
	}

	logger_i.Init(cfg.Log)
	var logger = logger_i.NewLogger("main")
	middleware.Init(cfg)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//stores
	reportStore, closeReportStore := store.NewReportStore(serviceContext, cfg.Store)
	artifactStore, closeArtifactStore, err := artifacts.NewArtifactStore(serviceContext, cfg.Artifacts)
	if err != nil {
		logger.Error("Artifact store failed to initialize. Shutting down.", "backend", cfg.Artifacts.Backend, "error", err)
		return
	}

	service, err := report.NewServiceFromConfig(serviceContext, cfg, reportStore, artifactStore)
	if err != nil {
		logger.Error("Synthesis provider failed to initialize. Shutting down.", "provider", cfg.Synth.Provider, "error", err)
		return
	}
	logger.Info("Report service ready", "provider", cfg.Synth.Provider, "model", cfg.Synth.Model, "store", cfg.Store.Backend, "artifacts", cfg.Artifacts.Backend)

	var mcpHandler http.Handler
	if cfg.MCP.Enabled {
		mcpHandler = mcpserver.NewHandler(mcpserver.NewServer(service))
		logger.Info("MCP endpoint enabled", "path", "/mcp")
	}
	router := server.NewRouter(handlers.NewReportHandler(service, cfg.Server), mcpHandler)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
		CloseServices: func() {
			closeExternalServices()
			if err := errors.Join(closeReportStore(), closeArtifactStore()); err != nil {
				logger.Error("Closing stores failed", "error", err)
			}
		},
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(cfg.Server, router)

	<-stopExecution
	logger.Info("Server stopped")
}
