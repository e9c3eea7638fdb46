package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/akolanti/DDRGenerator/internal/adapter/utils"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/handlers"
	"github.com/akolanti/DDRGenerator/internal/middleware"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

var (
	server  *http.Server
	_logger = logger_i.NewLogger("Server")
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
	ShutdownTimeout  time.Duration
}

// NewRouter registers every route. mcpHandler may be nil.
func NewRouter(h *handlers.ReportHandler, mcpHandler http.Handler) http.Handler {
	r := utils.NewRouter()

	r.Router.Get("/", middleware.WrapPublic(handlers.IndexHandler))
	r.Router.Get("/healthz", middleware.WrapPublic(handlers.GetHandler))

	r.Router.Post("/reports", middleware.WrapRateLimited(h.PostReportHandler))
	r.Router.Get("/reports/{id}", middleware.Wrap(h.GetReportHandler))
	r.Router.Get("/reports/{id}/ddr.txt", middleware.Wrap(h.DownloadTextHandler))
	r.Router.Get("/reports/{id}/ddr.pdf", middleware.Wrap(h.DownloadPDFHandler))
	r.Router.Get("/reports/{id}/ddr.html", middleware.Wrap(h.PreviewHandler))
	r.Router.Post("/assess", middleware.WrapRateLimited(h.PostAssessHandler))

	if mcpHandler != nil {
		r.Router.Handle("/mcp", middleware.Wrap(mcpHandler.ServeHTTP))
	}
	return r.Router
}

func CreateServer(cfg config.ServerConfig, handler http.Handler) {
	server = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", cfg.ListenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	timeout := shutdownParams.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.ShutdownContextTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				_logger.Error("Could not shutdown gracefully", "error", err)
			}
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
