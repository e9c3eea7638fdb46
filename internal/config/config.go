package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is built once at startup and handed to every constructor.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Rate      RateConfig      `mapstructure:"rate"`
	Log       LogConfig       `mapstructure:"log"`
	Extract   ExtractConfig   `mapstructure:"extract"`
	Synth     SynthConfig     `mapstructure:"synth"`
	Rules     RulesConfig     `mapstructure:"rules"`
	Render    RenderConfig    `mapstructure:"render"`
	Store     StoreConfig     `mapstructure:"store"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts"`
	MCP       MCPConfig       `mapstructure:"mcp"`
}

type ServerConfig struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

type AuthConfig struct {
	// Token is the expected bearer token. Empty disables auth.
	Token string `mapstructure:"token"`
}

type RateConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

type LogConfig struct {
	Prod  bool   `mapstructure:"prod"`
	Level string `mapstructure:"level"`
}

type ExtractConfig struct {
	PageTimeout time.Duration `mapstructure:"page_timeout"`
	TempDir     string        `mapstructure:"temp_dir"`
}

type SynthConfig struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int64         `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type RulesConfig struct {
	HighPhrases      []string `mapstructure:"high_phrases"`
	MediumPhrases    []string `mapstructure:"medium_phrases"`
	MinContentLength int      `mapstructure:"min_content_length"`
}

type RenderConfig struct {
	PageWidth    float64 `mapstructure:"page_width"`
	PageHeight   float64 `mapstructure:"page_height"`
	TopMargin    float64 `mapstructure:"top_margin"`
	BottomMargin float64 `mapstructure:"bottom_margin"`
	LeftOffset   float64 `mapstructure:"left_offset"`
	LineHeight   float64 `mapstructure:"line_height"`
	MaxLineChars int     `mapstructure:"max_line_chars"`
	FontFamily   string  `mapstructure:"font_family"`
	FontSize     float64 `mapstructure:"font_size"`
}

type StoreConfig struct {
	Backend       string        `mapstructure:"backend"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	BadgerPath    string        `mapstructure:"badger_path"`
	TTL           time.Duration `mapstructure:"ttl"`
}

type ArtifactsConfig struct {
	Backend  string    `mapstructure:"backend"`
	LocalDir string    `mapstructure:"local_dir"`
	S3       S3Config  `mapstructure:"s3"`
	GCS      GCSConfig `mapstructure:"gcs"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

type GCSConfig struct {
	Bucket          string `mapstructure:"bucket"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Prefix          string `mapstructure:"prefix"`
}

type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ServerListenAddr)
	v.SetDefault("server.read_timeout", ReadTimeout)
	v.SetDefault("server.write_timeout", WriteTimeout)
	v.SetDefault("server.idle_timeout", IdleTimeout)
	v.SetDefault("server.shutdown_timeout", ShutdownContextTimeout)
	v.SetDefault("server.max_upload_bytes", MaxUploadSize)

	v.SetDefault("auth.token", "")

	v.SetDefault("rate.per_second", RATE_LIMIT_PER_SECOND)
	v.SetDefault("rate.burst", BURST_RATE_LIMIT_PER_SECOND)

	v.SetDefault("log.prod", IS_PROD)
	v.SetDefault("log.level", "debug")

	v.SetDefault("extract.page_timeout", PageExtractionTimeout)
	v.SetDefault("extract.temp_dir", "")

	v.SetDefault("synth.provider", SynthProvider)
	v.SetDefault("synth.api_key", "")
	v.SetDefault("synth.base_url", "")
	v.SetDefault("synth.model", "")
	v.SetDefault("synth.temperature", ModelTemperature)
	v.SetDefault("synth.max_tokens", ModelMaxTokens)
	v.SetDefault("synth.timeout", SynthesisTimeout)

	v.SetDefault("rules.high_phrases", DefaultHighPhrases)
	v.SetDefault("rules.medium_phrases", DefaultMediumPhrases)
	v.SetDefault("rules.min_content_length", MinContentLength)

	v.SetDefault("render.page_width", PageWidth)
	v.SetDefault("render.page_height", PageHeight)
	v.SetDefault("render.top_margin", PageMargin)
	v.SetDefault("render.bottom_margin", PageMargin)
	v.SetDefault("render.left_offset", LeftOffset)
	v.SetDefault("render.line_height", LineHeight)
	v.SetDefault("render.max_line_chars", MaxLineChars)
	v.SetDefault("render.font_family", FontFamily)
	v.SetDefault("render.font_size", FontSize)

	v.SetDefault("store.backend", StoreBackend)
	v.SetDefault("store.redis_addr", RedisAddr)
	v.SetDefault("store.redis_password", "")
	v.SetDefault("store.redis_db", RedisReportDB)
	v.SetDefault("store.badger_path", BadgerPath)
	v.SetDefault("store.ttl", ReportTTL)

	v.SetDefault("artifacts.backend", ArtifactBackend)
	v.SetDefault("artifacts.local_dir", ArtifactLocalDir)
	v.SetDefault("artifacts.s3.bucket", "")
	v.SetDefault("artifacts.s3.region", "us-east-1")
	v.SetDefault("artifacts.s3.endpoint", "")
	v.SetDefault("artifacts.s3.access_key", "")
	v.SetDefault("artifacts.s3.secret_key", "")
	v.SetDefault("artifacts.s3.prefix", "ddr")
	v.SetDefault("artifacts.gcs.bucket", "")
	v.SetDefault("artifacts.gcs.credentials_file", "")
	v.SetDefault("artifacts.gcs.prefix", "ddr")

	v.SetDefault("mcp.enabled", false)
}

// Load reads an optional .env, an optional config.yaml from path and DDR_* env vars.
// Env wins over file, file wins over defaults.
func Load(path string) (*Config, error) {
	// a missing .env is the normal case outside local dev
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix("DDR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyProviderDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching files or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	cfg.applyProviderDefaults()
	return &cfg
}

func (c *Config) applyProviderDefaults() {
	c.Synth.Provider = strings.ToLower(strings.TrimSpace(c.Synth.Provider))
	switch c.Synth.Provider {
	case "groq":
		if c.Synth.BaseURL == "" {
			c.Synth.BaseURL = GroqBaseURL
		}
		if c.Synth.Model == "" {
			c.Synth.Model = SynthModelName
		}
	case "openai":
		if c.Synth.Model == "" {
			c.Synth.Model = "gpt-4o-mini"
		}
	case "gemini":
		if c.Synth.Model == "" {
			c.Synth.Model = GeminiModelName
		}
	case "anthropic":
		if c.Synth.Model == "" {
			c.Synth.Model = AnthropicModelName
		}
	}
}

func (c *Config) Validate() error {
	switch c.Synth.Provider {
	case "groq", "openai", "gemini", "anthropic":
	default:
		return fmt.Errorf("unsupported synth.provider %q", c.Synth.Provider)
	}
	if c.Rules.MinContentLength < 0 {
		return errors.New("rules.min_content_length must not be negative")
	}
	if c.Render.LineHeight <= 0 || c.Render.MaxLineChars <= 0 {
		return errors.New("render.line_height and render.max_line_chars must be positive")
	}
	if c.Render.PageHeight <= c.Render.TopMargin+c.Render.BottomMargin {
		return errors.New("render page height must exceed the margins")
	}
	return nil
}
