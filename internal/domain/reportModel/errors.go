package reportModel

import (
	"errors"
	"strings"
)

var ErrArtifactNotFound = errors.New("artifact not found")

// MissingInputError means one or both uploads were absent. Nothing ran.
type MissingInputError struct {
	Missing []string
}

func (e *MissingInputError) Error() string {
	return "missing source document: " + strings.Join(e.Missing, ", ")
}

// ExtractionError means a source document could not be parsed at all.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "extract " + e.Source + ": no usable text"
	}
	return "extract " + e.Source + ": " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// GenerationError means the synthesis service failed. The request is aborted.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "generate report via " + e.Provider + ": failed"
	}
	return "generate report via " + e.Provider + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// RenderError means the PDF artifact could not be produced. The text is still usable.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	if e.Err == nil {
		return "render document: failed"
	}
	return "render document: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }
