package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/akolanti/DDRGenerator/internal/adapter"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "traceId", ctx.Value(config.TRACE_ID_KEY), "error", ctx.Err())
		return false
	}
	return true
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

// writeGenerateError maps the pipeline error taxonomy onto status codes.
// Messages are meant for the person at the browser, not for operators.
func writeGenerateError(w http.ResponseWriter, rep reportModel.Report, err error) {
	var missingErr *reportModel.MissingInputError
	var genErr *reportModel.GenerationError
	var renderErr *reportModel.RenderError

	switch {
	case errors.As(err, &missingErr):
		WriteErrorResponse(w, http.StatusBadRequest, "", "Upload BOTH reports")
	case errors.As(err, &genErr):
		WriteErrorResponse(w, http.StatusBadGateway, "", "The report could not be generated right now. Please try again.")
	case errors.As(err, &renderErr) && rep.Id != "":
		writeJsonResponse(w, http.StatusInternalServerError, adapter.ToReportResponse(rep))
	default:
		logRH.Error("Report generation failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, rep.Id, "Internal Server Error")
	}
}

func writeArtifactError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, reportModel.ErrArtifactNotFound) {
		WriteErrorResponse(w, http.StatusNotFound, id, "File not found")
		return
	}
	logRH.Error("Artifact read failed", "reportId", id, "error", err)
	WriteErrorResponse(w, http.StatusInternalServerError, id, "Storage error")
}

func writeAttachment(w http.ResponseWriter, fileName string, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logRH.Error("Error writing attachment", "file", fileName, "error", err)
	}
}

// readUpload returns nil when the form field is absent or empty.
func readUpload(r *http.Request, field string) *reportModel.SourceDocument {
	fileReader, fileMetadata, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil || len(data) == 0 {
		logRH.Warn("Could not read upload", "field", field, "error", err)
		return nil
	}
	return &reportModel.SourceDocument{Name: fileMetadata.Filename, Data: data}
}
