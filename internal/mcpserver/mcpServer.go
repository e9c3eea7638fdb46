package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/akolanti/DDRGenerator/internal/adapter"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/report"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "1.0.0"

type AssessInput struct {
	Text string `json:"text" jsonschema:"text of an inspection or thermal report"`
}

type AssessOutput struct {
	Severity            string `json:"severity"`
	SeverityDisplay     string `json:"severity_display"`
	Completeness        string `json:"completeness"`
	CompletenessDisplay string `json:"completeness_display"`
}

type GenerateInput struct {
	InspectionName   string `json:"inspection_name" jsonschema:"file name of the inspection report, e.g. inspection.pdf"`
	InspectionBase64 string `json:"inspection_base64" jsonschema:"base64 encoded bytes of the inspection report"`
	ThermalName      string `json:"thermal_name" jsonschema:"file name of the thermal report, e.g. thermal.pdf"`
	ThermalBase64    string `json:"thermal_base64" jsonschema:"base64 encoded bytes of the thermal report"`
}

type GetReportInput struct {
	Id string `json:"id" jsonschema:"report id returned by generate_report"`
}

type ReportOutput struct {
	Id           string   `json:"id"`
	Status       string   `json:"status"`
	Severity     string   `json:"severity"`
	Completeness string   `json:"completeness"`
	Report       string   `json:"report"`
	Warnings     []string `json:"warnings,omitempty"`
	TextURL      string   `json:"text_url,omitempty"`
	PDFURL       string   `json:"pdf_url,omitempty"`
	CreatedTime  string   `json:"created_time"`
}

type tools struct {
	service report.Service
	logger  *logger_i.Logger
}

// NewServer exposes the report service as MCP tools.
func NewServer(service report.Service) *mcp.Server {
	t := &tools{service: service, logger: logger_i.NewLogger("MCP")}

	server := mcp.NewServer(&mcp.Implementation{Name: "ddr-generator", Version: serverVersion}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "assess_text",
		Description: "Score text with the severity keyword rules (LOW, MEDIUM, HIGH) and the completeness rule.",
	}, t.assessText)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_report",
		Description: "Generate a Detailed Diagnostic Report from an inspection report and a thermal report.",
	}, t.generateReport)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_report",
		Description: "Fetch a previously generated report by id.",
	}, t.getReport)
	return server
}

// NewHandler serves the MCP server over streamable HTTP.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

func (t *tools) assessText(ctx context.Context, req *mcp.CallToolRequest, in AssessInput) (*mcp.CallToolResult, AssessOutput, error) {
	a := t.service.Assess(in.Text)
	res := adapter.ToAssessResponse(a, in.Text)
	return nil, AssessOutput{
		Severity:            res.Severity,
		SeverityDisplay:     res.SeverityDisplay,
		Completeness:        res.Completeness,
		CompletenessDisplay: res.CompletenessDisplay,
	}, nil
}

func (t *tools) generateReport(ctx context.Context, req *mcp.CallToolRequest, in GenerateInput) (*mcp.CallToolResult, ReportOutput, error) {
	inspection, err := decodeDocument(in.InspectionName, in.InspectionBase64)
	if err != nil {
		return nil, ReportOutput{}, fmt.Errorf("inspection_base64: %w", err)
	}
	thermal, err := decodeDocument(in.ThermalName, in.ThermalBase64)
	if err != nil {
		return nil, ReportOutput{}, fmt.Errorf("thermal_base64: %w", err)
	}

	rep, err := t.service.Generate(ctx, reportModel.GenerateRequest{Inspection: inspection, Thermal: thermal})
	if err != nil {
		var renderErr *reportModel.RenderError
		if errors.As(err, &renderErr) && rep.Id != "" {
			// the text report exists, hand it back with the failure noted
			t.logger.WithTrace(ctx).Warn("Report generated without PDF", "reportId", rep.Id)
			return nil, toReportOutput(rep), nil
		}
		var missingErr *reportModel.MissingInputError
		if errors.As(err, &missingErr) {
			return nil, ReportOutput{}, fmt.Errorf("upload BOTH reports, missing: %s", strings.Join(missingErr.Missing, ", "))
		}
		return nil, ReportOutput{}, err
	}
	return nil, toReportOutput(rep), nil
}

func (t *tools) getReport(ctx context.Context, req *mcp.CallToolRequest, in GetReportInput) (*mcp.CallToolResult, ReportOutput, error) {
	rep, found := t.service.GetReport(ctx, in.Id)
	if !found {
		return nil, ReportOutput{}, fmt.Errorf("report %q not found", in.Id)
	}
	return nil, toReportOutput(rep), nil
}

// decodeDocument returns nil for an empty payload so the service reports it as missing.
func decodeDocument(name, payload string) (*reportModel.SourceDocument, error) {
	if payload == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	return &reportModel.SourceDocument{Name: name, Data: data}, nil
}

func toReportOutput(rep reportModel.Report) ReportOutput {
	d := adapter.ToDownloads(rep)
	return ReportOutput{
		Id:           rep.Id,
		Status:       string(rep.Status),
		Severity:     rep.Severity.Display(),
		Completeness: rep.Completeness.Display(),
		Report:       rep.Text,
		Warnings:     rep.Warnings,
		TextURL:      d.Text,
		PDFURL:       d.PDF,
		CreatedTime:  rep.CreatedTime.Format(time.RFC3339),
	}
}
