package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/dgraph-io/badger/v4"
)

// BadgerReportStore keeps reports on local disk for single node deployments.
type BadgerReportStore struct {
	db     *badger.DB
	ttl    time.Duration
	logger *logger_i.Logger
}

func OpenBadgerReportStore(dbPath string, ttl time.Duration) (*BadgerReportStore, error) {
	return openBadger(badger.DefaultOptions(dbPath).WithLogger(nil), ttl)
}

// OpenInMemoryBadgerReportStore is backed by memory only, nothing touches disk.
func OpenInMemoryBadgerReportStore(ttl time.Duration) (*BadgerReportStore, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil), ttl)
}

func openBadger(opts badger.Options, ttl time.Duration) (*BadgerReportStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}
	return &BadgerReportStore{
		db:     db,
		ttl:    ttl,
		logger: logger_i.NewLogger("Badger ReportStore"),
	}, nil
}

func (s *BadgerReportStore) Close() error {
	return s.db.Close()
}

func (s *BadgerReportStore) SaveReport(ctx context.Context, report reportModel.Report) error {
	val, err := json.Marshal(report)
	if err != nil {
		return err
	}
	entry := badger.NewEntry([]byte(reportKeyPrefix+report.Id), val)
	if s.ttl > 0 {
		entry = entry.WithTTL(s.ttl)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	})
	if err == nil {
		s.logger.WithTrace(ctx).Debug("Saved report to Badger", "reportId", report.Id)
	}
	return err
}

func (s *BadgerReportStore) GetReport(ctx context.Context, reportId string) (reportModel.Report, bool) {
	var report reportModel.Report
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(reportKeyPrefix + reportId))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &report)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return reportModel.Report{}, false
	}
	if err != nil {
		s.logger.WithTrace(ctx).Error("Error reading report from Badger", "reportId", reportId, "error", err)
		return reportModel.Report{}, false
	}
	return report, true
}

func (s *BadgerReportStore) DeleteReport(ctx context.Context, reportId string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(reportKeyPrefix + reportId))
	})
	if err != nil {
		s.logger.WithTrace(ctx).Error("Error deleting report from Badger", "reportId", reportId, "error", err)
	}
}
