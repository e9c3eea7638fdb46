// Command ddr generates a Detailed Diagnostic Report from two local files
// without starting the HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/data/artifacts"
	"github.com/akolanti/DDRGenerator/internal/data/store"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/report"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

func main() {
	var (
		inspectionPath string
		thermalPath    string
		outDir         string
		configPath     string
	)
	flag.StringVar(&inspectionPath, "inspection", "", "path to the inspection report")
	flag.StringVar(&thermalPath, "thermal", "", "path to the thermal report")
	flag.StringVar(&outDir, "out", ".", "directory for DDR_Report.txt and DDR_Report.pdf")
	flag.StringVar(&configPath, "config", ".", "directory holding config.yaml")
	flag.Parse()

	if err := run(inspectionPath, thermalPath, outDir, configPath); err != nil {
		fmt.Fprintln(os.Stderr, "ddr:", err)
		os.Exit(1)
	}
}

func run(inspectionPath, thermalPath, outDir, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger_i.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inspection, err := readDocument(inspectionPath)
	if err != nil {
		return err
	}
	thermal, err := readDocument(thermalPath)
	if err != nil {
		return err
	}

	// artifacts land under <out>/<report id>/, the final files are copied next to it
	artifactStore, err := artifacts.NewLocalStore(outDir)
	if err != nil {
		return err
	}
	service, err := report.NewServiceFromConfig(ctx, cfg, store.InitInMemoryReportStore(cfg.Store.TTL), artifactStore)
	if err != nil {
		return err
	}

	rep, err := service.Generate(ctx, reportModel.GenerateRequest{Inspection: inspection, Thermal: thermal})
	var renderErr *reportModel.RenderError
	if err != nil && !(errors.As(err, &renderErr) && rep.Id != "") {
		return err
	}

	fmt.Printf("Severity:      %s\n", rep.Severity.Display())
	fmt.Printf("Missing info:  %s\n", rep.Completeness.Display())
	for _, w := range rep.Warnings {
		fmt.Printf("Warning:       %s\n", w)
	}
	fmt.Println()
	fmt.Println(rep.Text)
	fmt.Println()

	for _, name := range []string{config.TextArtifactName, config.PDFArtifactName} {
		data, getErr := service.GetArtifact(ctx, rep.Id, name)
		if getErr != nil {
			continue
		}
		target := filepath.Join(outDir, name)
		if writeErr := os.WriteFile(target, data, 0o644); writeErr != nil {
			return writeErr
		}
		fmt.Println("Wrote", target)
	}
	if renderErr != nil {
		return err
	}
	return nil
}

// readDocument returns nil for an empty path so the service reports the missing upload.
func readDocument(path string) (*reportModel.SourceDocument, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &reportModel.SourceDocument{Name: filepath.Base(path), Data: data}, nil
}
