package report_test

import (
	"context"
	"sync"

	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/render"
)

// MockExtractor implements extract.Extractor, returning the raw bytes as text by default.
type MockExtractor struct {
	OnExtract func(ctx context.Context, source string, doc reportModel.SourceDocument) (string, error)
	mu        sync.Mutex
	calls     int
}

func (m *MockExtractor) Extract(ctx context.Context, source string, doc reportModel.SourceDocument) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.OnExtract != nil {
		return m.OnExtract(ctx, source, doc)
	}
	return string(doc.Data), nil
}

func (m *MockExtractor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockSynthesizer implements synth.ReportSynthesizer
type MockSynthesizer struct {
	OnSynthesize func(ctx context.Context, inspection string, thermal string) (string, error)
	Calls        int
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, inspection string, thermal string) (string, error) {
	m.Calls++
	if m.OnSynthesize != nil {
		return m.OnSynthesize(ctx, inspection, thermal)
	}
	return "1. Property Issue Summary\nmocked report", nil
}

// MockWriter implements render.DocumentWriter
type MockWriter struct {
	OnWrite func(text string) (render.RenderedDocument, error)
	Calls   int
}

func (m *MockWriter) Write(text string) (render.RenderedDocument, error) {
	m.Calls++
	if m.OnWrite != nil {
		return m.OnWrite(text)
	}
	return render.RenderedDocument{Data: []byte("%PDF-1.3 mock"), PageCount: 1}, nil
}

// MockArtifactStore implements reportModel.ArtifactStore in memory.
type MockArtifactStore struct {
	OnPut func(reportId string, name string) error
	mu    sync.Mutex
	files map[string][]byte
}

func (m *MockArtifactStore) PutArtifact(ctx context.Context, reportId string, name string, contentType string, data []byte) error {
	if m.OnPut != nil {
		if err := m.OnPut(reportId, name); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[reportId+"/"+name] = data
	return nil
}

func (m *MockArtifactStore) GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[reportId+"/"+name]
	if !ok {
		return nil, reportModel.ErrArtifactNotFound
	}
	return data, nil
}

func (m *MockArtifactStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}
