package store

import (
	"context"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

// NewReportStore picks the configured backend. When redis or badger cannot be
// opened the service keeps running on the in-memory store. The returned close
// func is never nil.
func NewReportStore(ctx context.Context, cfg config.StoreConfig) (reportModel.ReportStore, func() error) {
	logger := logger_i.NewLogger("Store Factory")
	noop := func() error { return nil }

	switch cfg.Backend {
	case "redis":
		if s := GetRedisReportStore(ctx, cfg); s != nil {
			logger.Info("Using redis report store", "addr", cfg.RedisAddr)
			return s, noop
		}
		logger.Warn("Redis unavailable, falling back to in-memory report store")
	case "badger":
		s, err := OpenBadgerReportStore(cfg.BadgerPath, cfg.TTL)
		if err == nil {
			logger.Info("Using badger report store", "path", cfg.BadgerPath)
			return s, s.Close
		}
		logger.Warn("Badger unavailable, falling back to in-memory report store", "error", err)
	case "memory", "":
	default:
		logger.Warn("Unknown store backend, using in-memory report store", "backend", cfg.Backend)
	}
	return InitInMemoryReportStore(cfg.TTL), noop
}
