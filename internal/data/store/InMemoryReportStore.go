package store

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem ReportStore")

type storedReport struct {
	report    reportModel.Report
	expiresAt time.Time
}

// InMemoryReportStore expires entries lazily on read.
type InMemoryReportStore struct {
	reportMutex *sync.RWMutex
	reportMap   map[string]storedReport
	ttl         time.Duration
	now         func() time.Time
}

func InitInMemoryReportStore(ttl time.Duration) *InMemoryReportStore {
	return &InMemoryReportStore{
		reportMutex: new(sync.RWMutex),
		reportMap:   make(map[string]storedReport),
		ttl:         ttl,
		now:         time.Now,
	}
}

func (store *InMemoryReportStore) SaveReport(ctx context.Context, report reportModel.Report) error {
	store.reportMutex.Lock()
	defer store.reportMutex.Unlock()

	entry := storedReport{report: report}
	if store.ttl > 0 {
		entry.expiresAt = store.now().Add(store.ttl)
	}
	store.reportMap[report.Id] = entry
	inMemLogger.Debug("Saved report to store", "reportId", report.Id)
	return nil
}

func (store *InMemoryReportStore) GetReport(ctx context.Context, reportId string) (reportModel.Report, bool) {
	store.reportMutex.RLock()
	entry, found := store.reportMap[reportId]
	store.reportMutex.RUnlock()

	if found && !entry.expiresAt.IsZero() && store.now().After(entry.expiresAt) {
		store.DeleteReport(ctx, reportId)
		return reportModel.Report{}, false
	}
	inMemLogger.Debug("Report lookup", "reportId", reportId, "found", found)
	return entry.report, found
}

func (store *InMemoryReportStore) DeleteReport(ctx context.Context, reportId string) {
	store.reportMutex.Lock()
	defer store.reportMutex.Unlock()
	delete(store.reportMap, reportId)
}
