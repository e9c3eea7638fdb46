package report

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/akolanti/DDRGenerator/internal/assess"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/metrics"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"golang.org/x/sync/errgroup"
)

// executeExtractionStep never fails. A document that cannot be read counts as empty text.
func (s *service) executeExtractionStep(ctx context.Context, log *logger_i.Logger, report *reportModel.Report, req reportModel.GenerateRequest) (string, string) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("extraction", time.Since(start)) }()

	var inspection, thermal string
	var inspectionWarn, thermalWarn string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inspection, inspectionWarn = s.extractOne(gctx, log, reportModel.SourceInspection, *req.Inspection)
		return nil
	})
	g.Go(func() error {
		thermal, thermalWarn = s.extractOne(gctx, log, reportModel.SourceThermal, *req.Thermal)
		return nil
	})
	_ = g.Wait()

	for _, w := range []string{inspectionWarn, thermalWarn} {
		if w != "" {
			report.Warnings = append(report.Warnings, w)
		}
	}
	report.InspectionChars = utf8.RuneCountInString(inspection)
	report.ThermalChars = utf8.RuneCountInString(thermal)
	return inspection, thermal
}

func (s *service) extractOne(ctx context.Context, log *logger_i.Logger, source string, doc reportModel.SourceDocument) (string, string) {
	text, err := s.extractor.Extract(ctx, source, doc)
	if err != nil {
		log.Warn("Extraction failed, continuing with empty text", "source", source, "error", err)
		metrics.IncrementExtractionFailures(source)
		return "", source + ": the document could not be read"
	}
	if text == "" {
		return "", source + ": no readable text found"
	}
	return text, ""
}

func (s *service) executeAssessmentStep(log *logger_i.Logger, report *reportModel.Report, inspection, thermal string) {
	report.Severity = s.classifier.Classify(assess.Combine(inspection, thermal))
	// the length rule counts only document text, no separator
	report.Completeness = s.completeness.Check(inspection + thermal)
	log.Debug("Assessment", "severity", report.Severity, "completeness", report.Completeness)
}

func (s *service) executeSynthesisStep(ctx context.Context, log *logger_i.Logger, inspection, thermal string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	text, err := s.synthesizer.Synthesize(ctx, inspection, thermal)
	if err != nil {
		var genErr *reportModel.GenerationError
		if !errors.As(err, &genErr) {
			err = &reportModel.GenerationError{Err: err}
		}
		log.Error("LLM_GENERATION_FAILURE", "error", err)
		return "", err
	}
	return text, nil
}

// executeTextArtifactStep keeps going on failure, the text also lives in the stored report.
func (s *service) executeTextArtifactStep(ctx context.Context, log *logger_i.Logger, report *reportModel.Report) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("artifact_text", time.Since(start)) }()

	err := s.artifacts.PutArtifact(ctx, report.Id, config.TextArtifactName, "text/plain; charset=utf-8", []byte(report.Text))
	if err != nil {
		log.Warn("Failed to store text artifact", "error", err)
		report.HasText = false
		return
	}
	report.HasText = true
}

func (s *service) executeRenderStep(ctx context.Context, log *logger_i.Logger, report *reportModel.Report) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("pdf_render", time.Since(start)) }()

	doc, err := s.writer.Write(report.Text)
	if err != nil {
		var renderErr *reportModel.RenderError
		if !errors.As(err, &renderErr) {
			err = &reportModel.RenderError{Err: err}
		}
		log.Error("PDF_RENDER_FAILURE", "error", err)
		return err
	}

	if err := s.artifacts.PutArtifact(ctx, report.Id, config.PDFArtifactName, "application/pdf", doc.Data); err != nil {
		log.Error("Failed to store pdf artifact", "error", err)
		return &reportModel.RenderError{Err: fmt.Errorf("store pdf: %w", err)}
	}
	report.HasPDF = true
	report.PageCount = doc.PageCount
	metrics.ObserveRenderedPages(doc.PageCount)
	return nil
}

func (s *service) executeSaveStep(ctx context.Context, log *logger_i.Logger, report reportModel.Report) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("report_store", time.Since(start)) }()

	if err := s.reports.SaveReport(ctx, report); err != nil {
		log.Error("Failed to store report", "error", err)
		return err
	}
	return nil
}
