package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	//the synthesis call is inside the request path so the write timeout is generous
	ReadTimeout            = 30 * time.Second
	WriteTimeout           = 150 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	MaxUploadSize = 32 << 20 //32mb for both uploads

	//extraction
	PageExtractionTimeout = 10 * time.Second

	//llm
	SynthProvider       = "groq"
	SynthModelName      = "llama-3.3-70b-versatile"
	GroqBaseURL         = "https://api.groq.com/openai/v1"
	GeminiModelName     = "gemini-2.5-flash"
	AnthropicModelName  = "claude-sonnet-4-5"
	ModelTemperature    = 0.2
	ModelMaxTokens      = 0 //no cap, the provider decides
	AnthropicMaxTokens  = 4096
	SynthesisTimeout    = 120 * time.Second
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//rules
	MinContentLength = 50

	//render - US letter in points
	PageWidth    = 612.0
	PageHeight   = 792.0
	PageMargin   = 40.0
	LeftOffset   = 40.0
	LineHeight   = 15.0
	MaxLineChars = 90
	FontFamily   = "Helvetica"
	FontSize     = 12.0

	//report store
	StoreBackend  = "memory"
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisReportDB = 0
	ReportTTL     = 24 * time.Hour
	BadgerPath    = "./data/reports"

	//artifacts
	ArtifactBackend  = "local"
	ArtifactLocalDir = "./reports"
	TextArtifactName = "DDR_Report.txt"
	PDFArtifactName  = "DDR_Report.pdf"
)

var (
	DefaultHighPhrases   = []string{"severe", "critical", "water leakage", "structural damage", "high moisture"}
	DefaultMediumPhrases = []string{"moderate", "damp", "crack", "heat loss"}
)
