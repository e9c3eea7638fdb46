package reportModel

import (
	"context"
	"time"
)

type SeverityLabel string
type CompletenessStatus string
type ReportStatus string
type DocType string

const (
	SeverityLow    SeverityLabel = "LOW"
	SeverityMedium SeverityLabel = "MEDIUM"
	SeverityHigh   SeverityLabel = "HIGH"

	CompletenessPresent      CompletenessStatus = "PRESENT"
	CompletenessNotAvailable CompletenessStatus = "NOT_AVAILABLE"

	ReportStatusComplete     ReportStatus = "COMPLETE"
	ReportStatusRenderFailed ReportStatus = "RENDER_FAILED"

	PDF  DocType = "PDF"
	DOCX DocType = "DOCX"
	TXT  DocType = "TXT"
	ERR  DocType = "ERROR"

	SourceInspection = "inspection"
	SourceThermal    = "thermal"
)

func (s SeverityLabel) Marker() string {
	switch s {
	case SeverityHigh:
		return "🔴"
	case SeverityMedium:
		return "🟠"
	default:
		return "🟢"
	}
}

// Display is the label as shown to the requester, e.g. "HIGH 🔴".
func (s SeverityLabel) Display() string {
	return string(s) + " " + s.Marker()
}

func (c CompletenessStatus) Display() string {
	if c == CompletenessPresent {
		return "Information Present"
	}
	return "Not Available"
}

// SourceDocument is an uploaded file. It lives only for the duration of a request.
type SourceDocument struct {
	Name string
	Data []byte
}

func (d *SourceDocument) IsEmpty() bool {
	return d == nil || len(d.Data) == 0
}

type GenerateRequest struct {
	Inspection *SourceDocument
	Thermal    *SourceDocument
}

type Report struct {
	Id              string             `json:"id"`
	TraceId         string             `json:"trace_id"`
	Status          ReportStatus       `json:"status"`
	Severity        SeverityLabel      `json:"severity"`
	Completeness    CompletenessStatus `json:"completeness"`
	Text            string             `json:"text"`
	InspectionChars int                `json:"inspection_chars"`
	ThermalChars    int                `json:"thermal_chars"`
	Warnings        []string           `json:"warnings,omitempty"`
	HasText         bool               `json:"has_text"`
	HasPDF          bool               `json:"has_pdf"`
	PageCount       int                `json:"page_count"`
	Error           *ReportError       `json:"error,omitempty"`
	CreatedTime     time.Time          `json:"created_time"`
}

type ReportError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type ReportStore interface {
	GetReport(ctx context.Context, reportId string) (Report, bool)
	SaveReport(ctx context.Context, report Report) error
	DeleteReport(ctx context.Context, reportId string)
}

// ArtifactStore keeps the downloadable files of a report, keyed by report id and file name.
type ArtifactStore interface {
	PutArtifact(ctx context.Context, reportId string, name string, contentType string, data []byte) error
	GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error)
}
