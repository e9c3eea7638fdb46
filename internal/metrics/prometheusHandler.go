package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var reportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reports_generated_total",
	Help: "Reports produced, labelled by severity",
}, []string{"severity"})

var extractionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "extraction_failures_total",
	Help: "Documents whose text could not be extracted, labelled by source",
}, []string{"source"})

var pageFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "extraction_page_failures_total",
	Help: "Individual PDF pages skipped because parsing failed or timed out",
})

var sourcePages = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "source_document_pages",
	Help:    "Declared page count of uploaded PDFs.",
	Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
})

var renderedPages = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "rendered_pages",
	Help:    "Page count of generated report PDFs.",
	Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func IncrementReportsGenerated(severity string) {
	reportsGenerated.WithLabelValues(severity).Inc()
}

func IncrementExtractionFailures(source string) {
	extractionFailures.WithLabelValues(source).Inc()
}

func IncrementPageFailures() {
	pageFailures.Inc()
}

func ObserveSourcePages(count int) {
	sourcePages.Observe(float64(count))
}

func ObserveRenderedPages(count int) {
	renderedPages.Observe(float64(count))
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "report_generation_duration_seconds",
	Help:    "Total time spent generating a report.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of pipeline steps and external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureReportMetrics(label string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
