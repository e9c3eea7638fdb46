package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/data/redisStore"
	"github.com/akolanti/DDRGenerator/internal/data/store"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func sampleReport(id string) reportModel.Report {
	return reportModel.Report{
		Id:           id,
		Status:       reportModel.ReportStatusComplete,
		Severity:     reportModel.SeverityMedium,
		Completeness: reportModel.CompletenessPresent,
		Text:         "1. Property Issue Summary\nCrack in hall",
		HasText:      true,
		HasPDF:       true,
		PageCount:    1,
		Warnings:     []string{"thermal: no usable text"},
		CreatedTime:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// runLifecycle is shared by every backend so they all honour the same contract.
func runLifecycle(t *testing.T, reportStore reportModel.ReportStore) {
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	report := sampleReport("report_abc_123")

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := reportStore.SaveReport(ctx, report); err != nil {
			t.Fatalf("SaveReport failed: %v", err)
		}

		got, found := reportStore.GetReport(ctx, report.Id)
		if !found {
			t.Fatal("Report was saved but not found")
		}
		if got.Text != report.Text || got.Severity != report.Severity || got.PageCount != report.PageCount {
			t.Errorf("Data mismatch! Got %+v, want %+v", got, report)
		}
		if !got.CreatedTime.Equal(report.CreatedTime) {
			t.Errorf("CreatedTime got %v, want %v", got.CreatedTime, report.CreatedTime)
		}
	})

	t.Run("Get Non-Existent Report", func(t *testing.T) {
		if _, found := reportStore.GetReport(ctx, "ghost-id"); found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Report", func(t *testing.T) {
		reportStore.DeleteReport(ctx, report.Id)
		if _, found := reportStore.GetReport(ctx, report.Id); found {
			t.Error("Report still exists after DeleteReport call")
		}
	})
}

func TestRedisReportStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	reportStore := store.TestReportStore(redisStore.NewTestStore(client), time.Hour)

	runLifecycle(t, reportStore)
}

func TestRedisReportStore_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	reportStore := store.TestReportStore(redisStore.NewTestStore(client), time.Minute)
	ctx := context.Background()

	if err := reportStore.SaveReport(ctx, sampleReport("ttl-report")); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if ttl := mr.TTL("ddr:report:ttl-report"); ttl != time.Minute {
		t.Errorf("TTL got %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, found := reportStore.GetReport(ctx, "ttl-report"); found {
		t.Error("expired report still returned")
	}
}

func TestInMemoryReportStore_Lifecycle(t *testing.T) {
	runLifecycle(t, store.InitInMemoryReportStore(time.Hour))
}

func TestInMemoryReportStore_Expiry(t *testing.T) {
	s := store.InitInMemoryReportStore(time.Nanosecond)
	ctx := context.Background()
	_ = s.SaveReport(ctx, sampleReport("short-lived"))

	time.Sleep(time.Millisecond)
	if _, found := s.GetReport(ctx, "short-lived"); found {
		t.Error("expired report still returned")
	}
}

func TestBadgerReportStore_Lifecycle(t *testing.T) {
	s, err := store.OpenInMemoryBadgerReportStore(time.Hour)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	defer s.Close()

	runLifecycle(t, s)
}

func TestBadgerReportStore_OnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := store.OpenBadgerReportStore(dir, time.Hour)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	if err := s.SaveReport(ctx, sampleReport("persisted")); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := store.OpenBadgerReportStore(dir, time.Hour)
	if err != nil {
		t.Fatalf("reopen badger: %v", err)
	}
	defer reopened.Close()
	if _, found := reopened.GetReport(ctx, "persisted"); !found {
		t.Error("report did not survive reopen")
	}
}

func TestNewReportStore_FallsBackToMemory(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StoreConfig
	}{
		{"memory", config.StoreConfig{Backend: "memory", TTL: time.Hour}},
		{"unknown", config.StoreConfig{Backend: "cassandra", TTL: time.Hour}},
		{"redis offline", config.StoreConfig{Backend: "redis", RedisAddr: "127.0.0.1:1", RedisDB: 7, TTL: time.Hour}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, closeFn := store.NewReportStore(context.Background(), tt.cfg)
			defer closeFn()

			if _, ok := s.(*store.InMemoryReportStore); !ok {
				t.Errorf("expected in-memory store, got %T", s)
			}
		})
	}
}

func TestInMemoryReportStore_Race(t *testing.T) {
	reportStore := store.InitInMemoryReportStore(time.Hour)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "race-trace")

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("race-%d", i%5)
			_ = reportStore.SaveReport(ctx, sampleReport(id))
			_, _ = reportStore.GetReport(ctx, id)
		}(i)
	}
	wg.Wait()
}
