package adapter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/DDRGenerator/internal/api"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/report"
)

func ToReportResponse(rep reportModel.Report) api.ReportResponse {

	var errorPtr *api.OutgoingError
	if rep.Error != nil {
		errorPtr = &api.OutgoingError{
			Code:    rep.Error.Code,
			Message: rep.Error.Message,
			Retry:   rep.Error.Retry,
		}
	}

	return api.ReportResponse{
		Id:                  rep.Id,
		Status:              string(rep.Status),
		Severity:            string(rep.Severity),
		SeverityDisplay:     rep.Severity.Display(),
		Completeness:        string(rep.Completeness),
		CompletenessDisplay: rep.Completeness.Display(),
		Report:              rep.Text,
		Warnings:            rep.Warnings,
		InspectionChars:     rep.InspectionChars,
		ThermalChars:        rep.ThermalChars,
		PageCount:           rep.PageCount,
		Downloads:           ToDownloads(rep),
		Error:               errorPtr,
		CreatedTime:         rep.CreatedTime,
	}
}

// ToDownloads only lists links that will resolve. The text link stays as long
// as the report itself carries text.
func ToDownloads(rep reportModel.Report) api.Downloads {
	var d api.Downloads
	if rep.HasText || strings.TrimSpace(rep.Text) != "" {
		d.Text = fmt.Sprintf("/reports/%s/ddr.txt", rep.Id)
		d.HTML = fmt.Sprintf("/reports/%s/ddr.html", rep.Id)
	}
	if rep.HasPDF {
		d.PDF = fmt.Sprintf("/reports/%s/ddr.pdf", rep.Id)
	}
	return d
}

func ToAssessResponse(a report.Assessment, text string) api.AssessResponse {
	return api.AssessResponse{
		Severity:            string(a.Severity),
		SeverityDisplay:     a.Severity.Display(),
		Completeness:        string(a.Completeness),
		CompletenessDisplay: a.Completeness.Display(),
		Chars:               utf8.RuneCountInString(strings.TrimSpace(text)),
	}
}

func BadRequest(id string, error string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Id: id,
		Error: &api.OutgoingError{
			Code:    code,
			Message: error,
			Retry:   code >= 500 || code == 429,
		},
	}
}
