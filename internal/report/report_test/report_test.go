package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/DDRGenerator/internal/assess"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/data/store"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/render"
	"github.com/akolanti/DDRGenerator/internal/report"
)

type harness struct {
	extractor *MockExtractor
	synth     *MockSynthesizer
	writer    *MockWriter
	artifacts *MockArtifactStore
	reports   *store.InMemoryReportStore
	service   report.Service
}

func newHarness() *harness {
	rules := config.Default().Rules
	h := &harness{
		extractor: &MockExtractor{},
		synth:     &MockSynthesizer{},
		writer:    &MockWriter{},
		artifacts: &MockArtifactStore{},
		reports:   store.InitInMemoryReportStore(time.Hour),
	}
	h.service = report.NewService(report.ServiceConfig{
		Extractor:    h.extractor,
		Classifier:   assess.NewClassifier(rules),
		Completeness: assess.NewCompletenessChecker(rules.MinContentLength),
		Synthesizer:  h.synth,
		Writer:       h.writer,
		Reports:      h.reports,
		Artifacts:    h.artifacts,
	})
	return h
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func request(inspection, thermal string) reportModel.GenerateRequest {
	return reportModel.GenerateRequest{
		Inspection: &reportModel.SourceDocument{Name: "inspection.pdf", Data: []byte(inspection)},
		Thermal:    &reportModel.SourceDocument{Name: "thermal.pdf", Data: []byte(thermal)},
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	tests := []struct {
		name    string
		req     reportModel.GenerateRequest
		missing []string
	}{
		{"no thermal", reportModel.GenerateRequest{Inspection: &reportModel.SourceDocument{Name: "a.pdf", Data: []byte("x")}}, []string{"thermal"}},
		{"no inspection", reportModel.GenerateRequest{Thermal: &reportModel.SourceDocument{Name: "b.pdf", Data: []byte("x")}}, []string{"inspection"}},
		{"neither", reportModel.GenerateRequest{}, []string{"inspection", "thermal"}},
		{"empty upload", request("", "data"), []string{"inspection"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()

			_, err := h.service.Generate(testCtx(), tt.req)

			var missingErr *reportModel.MissingInputError
			if !errors.As(err, &missingErr) {
				t.Fatalf("expected MissingInputError, got %v", err)
			}
			if strings.Join(missingErr.Missing, ",") != strings.Join(tt.missing, ",") {
				t.Errorf("Missing got %v, want %v", missingErr.Missing, tt.missing)
			}
			if h.extractor.Calls() != 0 || h.synth.Calls != 0 || h.writer.Calls != 0 {
				t.Errorf("nothing may run on missing input: extract=%d synth=%d render=%d", h.extractor.Calls(), h.synth.Calls, h.writer.Calls)
			}
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	h := newHarness()
	inspection := "Moderate crack observed in the north wall of the hall."
	thermal := "Cold spot."
	var gotInspection, gotThermal string
	h.synth.OnSynthesize = func(ctx context.Context, i string, th string) (string, error) {
		gotInspection, gotThermal = i, th
		return "DDR text", nil
	}

	rep, err := h.service.Generate(testCtx(), request(inspection, thermal))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Severity != reportModel.SeverityMedium {
		t.Errorf("Severity got %v, want MEDIUM", rep.Severity)
	}
	if rep.Completeness != reportModel.CompletenessPresent {
		t.Errorf("Completeness got %v, want PRESENT", rep.Completeness)
	}
	if gotInspection != inspection || gotThermal != thermal {
		t.Errorf("synthesizer got (%q, %q)", gotInspection, gotThermal)
	}
	if rep.Text != "DDR text" || rep.Status != reportModel.ReportStatusComplete {
		t.Errorf("unexpected report %+v", rep)
	}
	if !rep.HasText || !rep.HasPDF || rep.PageCount != 1 {
		t.Errorf("artifacts not recorded: %+v", rep)
	}
	if rep.Error != nil {
		t.Errorf("successful report carries an error: %+v", rep.Error)
	}
	raw, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	if strings.Contains(string(raw), `"error"`) {
		t.Errorf("successful report must not serialize an error object: %s", raw)
	}
	if rep.TraceId != "test-trace" || rep.Id == "" {
		t.Errorf("ids not set: id=%q trace=%q", rep.Id, rep.TraceId)
	}

	txt, err := h.service.GetArtifact(testCtx(), rep.Id, config.TextArtifactName)
	if err != nil || string(txt) != "DDR text" {
		t.Errorf("text artifact got %q, %v", txt, err)
	}
	if _, err := h.service.GetArtifact(testCtx(), rep.Id, config.PDFArtifactName); err != nil {
		t.Errorf("pdf artifact missing: %v", err)
	}
	if stored, found := h.service.GetReport(testCtx(), rep.Id); !found || stored.Text != "DDR text" {
		t.Errorf("report not stored")
	}
}

func TestGenerate_SeverityFromBothDocuments(t *testing.T) {
	tests := []struct {
		name       string
		inspection string
		thermal    string
		severity   reportModel.SeverityLabel
	}{
		{"high in thermal only", "all fine here", "critical moisture under tiles", reportModel.SeverityHigh},
		{"medium in inspection, high in thermal", "damp corner", "severe heat loss", reportModel.SeverityHigh},
		{"phrase split across documents", "the wall shows structural", "damage is unclear", reportModel.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			rep, err := h.service.Generate(testCtx(), request(tt.inspection, tt.thermal))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rep.Severity != tt.severity {
				t.Errorf("Severity got %v, want %v", rep.Severity, tt.severity)
			}
		})
	}
}

func TestGenerate_CompletenessFromBothDocuments(t *testing.T) {
	crackInspection := "Moderate crack observed in wall plaster near the east window"

	tests := []struct {
		name         string
		inspection   string
		thermal      string
		severity     reportModel.SeverityLabel
		completeness reportModel.CompletenessStatus
	}{
		{"60 char inspection with crack, empty thermal", crackInspection, "", reportModel.SeverityMedium, reportModel.CompletenessPresent},
		{"short crack note, empty thermal", "Moderate crack observed in wall", "", reportModel.SeverityMedium, reportModel.CompletenessNotAvailable},
		{"49 chars across both documents", strings.Repeat("a", 25), strings.Repeat("b", 24), reportModel.SeverityLow, reportModel.CompletenessNotAvailable},
		{"50 chars across both documents", strings.Repeat("a", 25), strings.Repeat("b", 25), reportModel.SeverityLow, reportModel.CompletenessPresent},
		{"49 chars all in thermal", "", strings.Repeat("b", 49), reportModel.SeverityLow, reportModel.CompletenessNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			// an empty upload is a missing input, so the extractor maps markers to the texts under test
			h.extractor.OnExtract = func(ctx context.Context, source string, doc reportModel.SourceDocument) (string, error) {
				if source == reportModel.SourceInspection {
					return tt.inspection, nil
				}
				return tt.thermal, nil
			}

			rep, err := h.service.Generate(testCtx(), request("inspection", "thermal"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rep.Severity != tt.severity {
				t.Errorf("Severity got %v, want %v", rep.Severity, tt.severity)
			}
			if rep.Completeness != tt.completeness {
				t.Errorf("Completeness got %v, want %v (chars=%d)", rep.Completeness, tt.completeness, rep.InspectionChars+rep.ThermalChars)
			}
		})
	}
}

func TestGenerate_ExtractionFailureIsAbsorbed(t *testing.T) {
	h := newHarness()
	h.extractor.OnExtract = func(ctx context.Context, source string, doc reportModel.SourceDocument) (string, error) {
		if source == reportModel.SourceThermal {
			return "", &reportModel.ExtractionError{Source: source, Err: errors.New("bad xref")}
		}
		return string(doc.Data), nil
	}
	var gotThermal = "unset"
	h.synth.OnSynthesize = func(ctx context.Context, i string, th string) (string, error) {
		gotThermal = th
		return "DDR text", nil
	}

	rep, err := h.service.Generate(testCtx(), request("short", "garbage"))
	if err != nil {
		t.Fatalf("extraction failures must not abort the request: %v", err)
	}
	if gotThermal != "" {
		t.Errorf("failed document must become empty text, got %q", gotThermal)
	}
	if rep.Completeness != reportModel.CompletenessNotAvailable {
		t.Errorf("Completeness got %v, want NOT_AVAILABLE", rep.Completeness)
	}
	if len(rep.Warnings) != 1 || !strings.HasPrefix(rep.Warnings[0], "thermal") {
		t.Errorf("Warnings got %v", rep.Warnings)
	}
	if rep.ThermalChars != 0 || rep.InspectionChars != 5 {
		t.Errorf("char counts got %d/%d", rep.InspectionChars, rep.ThermalChars)
	}
}

func TestGenerate_GenerationFailure(t *testing.T) {
	h := newHarness()
	h.synth.OnSynthesize = func(ctx context.Context, i string, th string) (string, error) {
		return "", &reportModel.GenerationError{Provider: "groq", Err: errors.New("401")}
	}

	_, err := h.service.Generate(testCtx(), request("inspection text", "thermal text"))

	var genErr *reportModel.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if h.artifacts.Count() != 0 {
		t.Errorf("no artifacts may be written, found %d", h.artifacts.Count())
	}
	if h.writer.Calls != 0 {
		t.Errorf("renderer must not run after a generation failure")
	}
}

func TestGenerate_PlainSynthErrorIsWrapped(t *testing.T) {
	h := newHarness()
	h.synth.OnSynthesize = func(ctx context.Context, i string, th string) (string, error) {
		return "", errors.New("boom")
	}

	_, err := h.service.Generate(testCtx(), request("a", "b"))

	var genErr *reportModel.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerate_RenderFailureKeepsText(t *testing.T) {
	h := newHarness()
	h.writer.OnWrite = func(text string) (render.RenderedDocument, error) {
		return render.RenderedDocument{}, &reportModel.RenderError{Err: errors.New("font missing")}
	}

	rep, err := h.service.Generate(testCtx(), request("inspection text", "thermal text"))

	var renderErr *reportModel.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if rep.Status != reportModel.ReportStatusRenderFailed || rep.HasPDF || !rep.HasText {
		t.Errorf("unexpected report state %+v", rep)
	}
	if rep.Error == nil || !rep.Error.Retry {
		t.Errorf("render failure must be recorded on the report, got %+v", rep.Error)
	}
	if _, found := h.service.GetReport(testCtx(), rep.Id); !found {
		t.Errorf("report must still be stored after a render failure")
	}
	if txt, err := h.service.GetArtifact(testCtx(), rep.Id, config.TextArtifactName); err != nil || len(txt) == 0 {
		t.Errorf("text download must keep working: %v", err)
	}
}

func TestGenerate_PDFStoreFailure(t *testing.T) {
	h := newHarness()
	h.artifacts.OnPut = func(reportId string, name string) error {
		if name == config.PDFArtifactName {
			return errors.New("bucket gone")
		}
		return nil
	}

	rep, err := h.service.Generate(testCtx(), request("inspection text", "thermal text"))

	var renderErr *reportModel.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if rep.HasPDF {
		t.Errorf("HasPDF must be false")
	}
}

func TestGenerate_TextStoreFailureDoesNotAbort(t *testing.T) {
	h := newHarness()
	h.artifacts.OnPut = func(reportId string, name string) error {
		if name == config.TextArtifactName {
			return errors.New("disk full")
		}
		return nil
	}

	rep, err := h.service.Generate(testCtx(), request("inspection text", "thermal text"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.HasText || !rep.HasPDF || rep.Text == "" {
		t.Errorf("unexpected report state %+v", rep)
	}
}

func TestGenerate_UniqueIds(t *testing.T) {
	h := newHarness()
	first, _ := h.service.Generate(testCtx(), request("a", "b"))
	second, _ := h.service.Generate(testCtx(), request("a", "b"))
	if first.Id == second.Id {
		t.Errorf("every request needs its own id, got %s twice", first.Id)
	}
}

func TestGetArtifact_UnknownReport(t *testing.T) {
	h := newHarness()
	if _, err := h.service.GetArtifact(testCtx(), "nope", config.TextArtifactName); !errors.Is(err, reportModel.ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestAssess(t *testing.T) {
	h := newHarness()
	got := h.service.Assess(strings.Repeat("x", 45) + " crack")
	if got.Severity != reportModel.SeverityMedium || got.Completeness != reportModel.CompletenessPresent {
		t.Errorf("Assess got %+v", got)
	}
}
