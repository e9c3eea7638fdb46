package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akolanti/DDRGenerator/internal/adapter"
	"github.com/akolanti/DDRGenerator/internal/adapter/utils"
	"github.com/akolanti/DDRGenerator/internal/api"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// IndexHandler serves the single page upload UI.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

// PostReportHandler godoc
// @Summary      Generate a Detailed Diagnostic Report
// @Description  Accepts an inspection report and a thermal report, extracts their text, scores severity and completeness, asks the language model for the DDR and renders it as text and PDF. The call is synchronous.
// @Tags         Reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        inspection  formData  file  true  "Inspection report (PDF, DOCX, ODT, RTF or TXT)"
// @Param        thermal     formData  file  true  "Thermal report (PDF, DOCX, ODT, RTF or TXT)"
// @Success      201  {object}  api.ReportResponse  "Report generated"
// @Failure      400  {object}  api.ErrorResponse   "One or both reports missing"
// @Failure      500  {object}  api.ReportResponse  "PDF could not be created, text report attached"
// @Failure      502  {object}  api.ErrorResponse   "The language model failed"
// @Security     BearerAuth
// @Router       /reports [post]
func (h *ReportHandler) PostReportHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request", "remote", r.RemoteAddr)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "", "The uploaded files are too large")
			return
		}
		// no multipart body at all is the same as nothing uploaded
		logRH.Debug("Multipart parse failed", "error", err)
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	req := reportModel.GenerateRequest{
		Inspection: readUpload(r, reportModel.SourceInspection),
		Thermal:    readUpload(r, reportModel.SourceThermal),
	}

	rep, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeGenerateError(w, rep, err)
		return
	}
	w.Header().Set("Location", "/reports/"+rep.Id)
	writeJsonResponse(w, http.StatusCreated, adapter.ToReportResponse(rep))
}

// GetReportHandler godoc
// @Summary      Get a generated report
// @Description  Returns the stored report, including severity, completeness and download links.
// @Tags         Reports
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  api.ReportResponse
// @Failure      404  {object}  api.ErrorResponse  "Report not found or expired"
// @Security     BearerAuth
// @Router       /reports/{id} [get]
func (h *ReportHandler) GetReportHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	rep, found := h.service.GetReport(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Report not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToReportResponse(rep))
}

// DownloadTextHandler godoc
// @Summary      Download the report as text
// @Tags         Downloads
// @Produce      plain
// @Param        id   path      string  true  "Report ID"
// @Success      200  {file}    file    "DDR_Report.txt"
// @Failure      404  {object}  api.ErrorResponse
// @Security     BearerAuth
// @Router       /reports/{id}/ddr.txt [get]
func (h *ReportHandler) DownloadTextHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	data, err := h.service.GetArtifact(r.Context(), id, config.TextArtifactName)
	if errors.Is(err, reportModel.ErrArtifactNotFound) {
		// the stored report carries the same text when the artifact write failed
		if rep, found := h.service.GetReport(r.Context(), id); found && rep.Text != "" {
			data, err = []byte(rep.Text), nil
		}
	}
	if err != nil {
		writeArtifactError(w, id, err)
		return
	}
	writeAttachment(w, config.TextArtifactName, "text/plain; charset=utf-8", data)
}

// DownloadPDFHandler godoc
// @Summary      Download the report as PDF
// @Tags         Downloads
// @Produce      application/pdf
// @Param        id   path      string  true  "Report ID"
// @Success      200  {file}    file    "DDR_Report.pdf"
// @Failure      404  {object}  api.ErrorResponse
// @Security     BearerAuth
// @Router       /reports/{id}/ddr.pdf [get]
func (h *ReportHandler) DownloadPDFHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	data, err := h.service.GetArtifact(r.Context(), id, config.PDFArtifactName)
	if err != nil {
		writeArtifactError(w, id, err)
		return
	}
	writeAttachment(w, config.PDFArtifactName, "application/pdf", data)
}

// PreviewHandler godoc
// @Summary      Preview the report as HTML
// @Description  Renders the report text (treated as Markdown) to a read only HTML page.
// @Tags         Downloads
// @Produce      html
// @Param        id   path      string  true  "Report ID"
// @Success      200  {string}  string  "HTML page"
// @Failure      404  {object}  api.ErrorResponse
// @Security     BearerAuth
// @Router       /reports/{id}/ddr.html [get]
func (h *ReportHandler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	rep, found := h.service.GetReport(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Report not found")
		return
	}
	page, err := renderPreview(rep)
	if err != nil {
		logRH.Error("Preview rendering failed", "reportId", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, id, "Preview unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// PostAssessHandler godoc
// @Summary      Score text without generating a report
// @Description  Applies the severity keyword rules and the completeness length rule to the given text.
// @Tags         Assessment
// @Accept       json
// @Produce      json
// @Param        request  body      api.AssessRequest   true  "Text to assess"
// @Success      200      {object}  api.AssessResponse
// @Failure      400      {object}  api.ErrorResponse   "Body is not valid JSON"
// @Security     BearerAuth
// @Router       /assess [post]
func (h *ReportHandler) PostAssessHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var requestData api.AssessRequest
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxUploadBytes)).Decode(&requestData); err != nil {
		logRH.Warn("Bad assess request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}
	assessment := h.service.Assess(requestData.Text)
	writeJsonResponse(w, http.StatusOK, adapter.ToAssessResponse(assessment, requestData.Text))
}
