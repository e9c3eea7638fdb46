package handlers

import (
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/report"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

var logRH = logger_i.NewLogger("RequestHandler")

type ReportHandler struct {
	service        report.Service
	maxUploadBytes int64
}

func NewReportHandler(service report.Service, cfg config.ServerConfig) *ReportHandler {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = config.MaxUploadSize
	}
	logRH.Info("Starting report handler", "max upload bytes", maxUpload)
	return &ReportHandler{service: service, maxUploadBytes: maxUpload}
}
