package report

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/DDRGenerator/internal/adapter/utils"
	"github.com/akolanti/DDRGenerator/internal/assess"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/extract"
	"github.com/akolanti/DDRGenerator/internal/metrics"
	"github.com/akolanti/DDRGenerator/internal/render"
	"github.com/akolanti/DDRGenerator/internal/synth"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

// Service is the only thing handlers, the CLI and the MCP tools talk to.
// The private struct holds the pipeline pieces so tests can swap any of them.
type Service interface {
	Generate(ctx context.Context, req reportModel.GenerateRequest) (reportModel.Report, error)
	Assess(text string) Assessment
	GetReport(ctx context.Context, reportId string) (reportModel.Report, bool)
	GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error)
}

type Assessment struct {
	Severity     reportModel.SeverityLabel
	Completeness reportModel.CompletenessStatus
}

type ServiceConfig struct {
	Extractor    extract.Extractor
	Classifier   *assess.Classifier
	Completeness assess.CompletenessChecker
	Synthesizer  synth.ReportSynthesizer
	Writer       render.DocumentWriter
	Reports      reportModel.ReportStore
	Artifacts    reportModel.ArtifactStore
}

type service struct {
	extractor    extract.Extractor
	classifier   *assess.Classifier
	completeness assess.CompletenessChecker
	synthesizer  synth.ReportSynthesizer
	writer       render.DocumentWriter
	reports      reportModel.ReportStore
	artifacts    reportModel.ArtifactStore
	logger       *logger_i.Logger
}

func NewService(cfg ServiceConfig) Service {
	return &service{
		extractor:    cfg.Extractor,
		classifier:   cfg.Classifier,
		completeness: cfg.Completeness,
		synthesizer:  cfg.Synthesizer,
		writer:       cfg.Writer,
		reports:      cfg.Reports,
		artifacts:    cfg.Artifacts,
		logger:       logger_i.NewLogger("Report Service"),
	}
}

func (s *service) Generate(ctx context.Context, req reportModel.GenerateRequest) (reportModel.Report, error) {
	start := time.Now()
	outcome := "error"
	defer func() { metrics.CaptureReportMetrics(outcome, time.Since(start)) }()

	if missing := missingInputs(req); len(missing) > 0 {
		outcome = "missing_input"
		return reportModel.Report{}, &reportModel.MissingInputError{Missing: missing}
	}

	report := reportModel.Report{
		Id:          utils.GetNewUUID(),
		TraceId:     traceId(ctx),
		CreatedTime: time.Now().UTC(),
	}
	log := s.logger.WithTrace(ctx).With("reportId", report.Id)
	log.Info("Generating report", "inspection", req.Inspection.Name, "thermal", req.Thermal.Name)

	inspection, thermal := s.executeExtractionStep(ctx, log, &report, req)

	s.executeAssessmentStep(log, &report, inspection, thermal)

	text, err := s.executeSynthesisStep(ctx, log, inspection, thermal)
	if err != nil {
		outcome = "generation_failed"
		return reportModel.Report{}, err
	}
	report.Text = text
	metrics.IncrementReportsGenerated(string(report.Severity))

	s.executeTextArtifactStep(ctx, log, &report)

	renderErr := s.executeRenderStep(ctx, log, &report)
	if renderErr != nil {
		report.Status = reportModel.ReportStatusRenderFailed
		report.Error = &reportModel.ReportError{
			Code:    500,
			Message: "The PDF could not be created. The text report is still available.",
			Retry:   true,
		}
		outcome = "render_failed"
	} else {
		report.Status = reportModel.ReportStatusComplete
		outcome = "complete"
	}

	if err := s.executeSaveStep(ctx, log, report); err != nil {
		outcome = "store_failed"
		return report, fmt.Errorf("store report: %w", err)
	}
	log.Info("Report ready", "status", report.Status, "severity", report.Severity, "pages", report.PageCount)
	return report, renderErr
}

func (s *service) Assess(text string) Assessment {
	return Assessment{
		Severity:     s.classifier.Classify(text),
		Completeness: s.completeness.Check(text),
	}
}

func (s *service) GetReport(ctx context.Context, reportId string) (reportModel.Report, bool) {
	return s.reports.GetReport(ctx, reportId)
}

func (s *service) GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error) {
	if _, found := s.reports.GetReport(ctx, reportId); !found {
		return nil, reportModel.ErrArtifactNotFound
	}
	return s.artifacts.GetArtifact(ctx, reportId, name)
}

func missingInputs(req reportModel.GenerateRequest) []string {
	var missing []string
	if req.Inspection.IsEmpty() {
		missing = append(missing, reportModel.SourceInspection)
	}
	if req.Thermal.IsEmpty() {
		missing = append(missing, reportModel.SourceThermal)
	}
	return missing
}

func traceId(ctx context.Context) string {
	if v, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return v
	}
	return ""
}
