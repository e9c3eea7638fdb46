package api

import "time"

type ReportResponse struct {
	Id                  string         `json:"id" example:"7d3c1a52-5f0e-4c55-9a52-2f1f0e2a9b11"`
	Status              string         `json:"status" example:"COMPLETE"`
	Severity            string         `json:"severity" example:"HIGH"`
	SeverityDisplay     string         `json:"severity_display" example:"HIGH 🔴"`
	Completeness        string         `json:"completeness" example:"PRESENT"`
	CompletenessDisplay string         `json:"completeness_display" example:"Information Present"`
	Report              string         `json:"report"`
	Warnings            []string       `json:"warnings,omitempty"`
	InspectionChars     int            `json:"inspection_chars" example:"5120"`
	ThermalChars        int            `json:"thermal_chars" example:"1890"`
	PageCount           int            `json:"page_count" example:"2"`
	Downloads           Downloads      `json:"downloads"`
	Error               *OutgoingError `json:"error,omitempty"`
	CreatedTime         time.Time      `json:"created_time"`
}

type Downloads struct {
	Text string `json:"text,omitempty" example:"/reports/7d3c1a52-5f0e-4c55-9a52-2f1f0e2a9b11/ddr.txt"`
	PDF  string `json:"pdf,omitempty" example:"/reports/7d3c1a52-5f0e-4c55-9a52-2f1f0e2a9b11/ddr.pdf"`
	HTML string `json:"html,omitempty" example:"/reports/7d3c1a52-5f0e-4c55-9a52-2f1f0e2a9b11/ddr.html"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Upload BOTH reports"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type ErrorResponse struct {
	Id    string         `json:"id,omitempty"`
	Error *OutgoingError `json:"error"`
}

type AssessResponse struct {
	Severity            string `json:"severity" example:"MEDIUM"`
	SeverityDisplay     string `json:"severity_display" example:"MEDIUM 🟠"`
	Completeness        string `json:"completeness" example:"NOT_AVAILABLE"`
	CompletenessDisplay string `json:"completeness_display" example:"Not Available"`
	Chars               int    `json:"chars" example:"42"`
}

// requests---------------------

type AssessRequest struct {
	Text string `json:"text"`
}
