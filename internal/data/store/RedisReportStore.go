package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/data/redisStore"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

const reportKeyPrefix = "ddr:report:"

type RedisReportStore struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logger_i.Logger
}

// GetRedisReportStore returns nil when redis cannot be reached.
func GetRedisReportStore(ctx context.Context, cfg config.StoreConfig) *RedisReportStore {
	s := redisStore.GetRedisStore(ctx, cfg)
	if s == nil {
		return nil
	}
	return &RedisReportStore{
		store:  s,
		ttl:    cfg.TTL,
		logger: logger_i.NewLogger("ReportStore"),
	}
}

func (s *RedisReportStore) SaveReport(ctx context.Context, report reportModel.Report) error {
	log := s.logger.WithTrace(ctx).With("reportId", report.Id)
	log.Debug("saving report")
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, reportKeyPrefix+report.Id, data, s.ttl)
	if err == nil {
		log.Debug("Saved report to Redis")
	}
	return err
}

func (s *RedisReportStore) GetReport(ctx context.Context, reportId string) (reportModel.Report, bool) {
	var report reportModel.Report
	log := s.logger.WithTrace(ctx).With("reportId", reportId)
	val, err := s.store.Get(ctx, reportKeyPrefix+reportId)
	if s.store.IsNil(err) {
		return report, false
	} else if err != nil {
		log.Error("Error reading report from Redis", "error", err)
		return report, false
	}

	err = json.Unmarshal([]byte(val), &report)
	if err != nil {
		log.Error("Stored report is not valid JSON", "error", err)
		return report, false
	}

	log.Debug("Report found in Redis")
	return report, true
}

func (s *RedisReportStore) DeleteReport(ctx context.Context, reportId string) {
	err := s.store.Del(ctx, reportKeyPrefix+reportId)
	if err != nil {
		s.logger.Error("Error deleting report from Redis", "reportId", reportId, "error", err)
		return
	}
	s.logger.Debug("Report deleted from Redis", "reportId", reportId)
}

func TestReportStore(store *redisStore.Store, ttl time.Duration) *RedisReportStore {
	return &RedisReportStore{
		store:  store,
		ttl:    ttl,
		logger: logger_i.NewLogger("test redis"),
	}
}
