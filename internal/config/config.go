package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Generation GenerationConfig
	OCR        OCRConfig
	Staging    StagingConfig
	S3         S3Config
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
	MaxImageSizeMB  int64         `mapstructure:"max_image_size_mb"`
}

// MaxImageBytes returns the upload size limit in bytes.
func (s *ServerConfig) MaxImageBytes() int64 {
	return s.MaxImageSizeMB << 20
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenerationConfig holds settings for the text-generation provider used by
// field extraction. An empty Model selects the provider's default model.
type GenerationConfig struct {
	Provider          string  `mapstructure:"provider"`
	APIKey            string  `mapstructure:"api_key"`
	Model             string  `mapstructure:"model"`
	Endpoint          string  `mapstructure:"endpoint"`
	Temperature       float64 `mapstructure:"temperature"`
	TimeoutSecs       int     `mapstructure:"timeout_secs"`
	RequestsPerMinute int     `mapstructure:"requests_per_minute"`
}

// OCRConfig holds settings for the Google Cloud Vision text detector.
type OCRConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// StagingConfig selects where uploaded images are kept while OCR runs.
// Backend is one of "none", "local" or "s3".
type StagingConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Prefix  string `mapstructure:"prefix"`
}

// S3Config holds AWS S3 settings for the s3 staging backend.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the DOCSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_image_size_mb", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Generation defaults
	v.SetDefault("generation.provider", "cohere")
	v.SetDefault("generation.api_key", "")
	v.SetDefault("generation.model", "")
	v.SetDefault("generation.endpoint", "")
	v.SetDefault("generation.temperature", 0.1)
	v.SetDefault("generation.timeout_secs", 60)
	v.SetDefault("generation.requests_per_minute", 0)

	// OCR defaults
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.endpoint", "")
	v.SetDefault("ocr.timeout_secs", 30)

	// Staging defaults
	v.SetDefault("staging.backend", "local")
	v.SetDefault("staging.dir", "./uploads")
	v.SetDefault("staging.prefix", "uploads/")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "docscan-staging")
	v.SetDefault("s3.endpoint", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "DOCSCAN_SERVER_PORT",
		"server.read_timeout":            "DOCSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "DOCSCAN_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":        "DOCSCAN_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":             "DOCSCAN_SERVER_ENVIRONMENT",
		"server.max_image_size_mb":       "DOCSCAN_SERVER_MAX_IMAGE_SIZE_MB",
		"log.level":                      "DOCSCAN_LOG_LEVEL",
		"log.format":                     "DOCSCAN_LOG_FORMAT",
		"generation.provider":            "DOCSCAN_GENERATION_PROVIDER",
		"generation.api_key":             "DOCSCAN_GENERATION_API_KEY",
		"generation.model":               "DOCSCAN_GENERATION_MODEL",
		"generation.endpoint":            "DOCSCAN_GENERATION_ENDPOINT",
		"generation.temperature":         "DOCSCAN_GENERATION_TEMPERATURE",
		"generation.timeout_secs":        "DOCSCAN_GENERATION_TIMEOUT_SECS",
		"generation.requests_per_minute": "DOCSCAN_GENERATION_REQUESTS_PER_MINUTE",
		"ocr.api_key":                    "DOCSCAN_OCR_API_KEY",
		"ocr.endpoint":                   "DOCSCAN_OCR_ENDPOINT",
		"ocr.timeout_secs":               "DOCSCAN_OCR_TIMEOUT_SECS",
		"staging.backend":                "DOCSCAN_STAGING_BACKEND",
		"staging.dir":                    "DOCSCAN_STAGING_DIR",
		"staging.prefix":                 "DOCSCAN_STAGING_PREFIX",
		"s3.region":                      "DOCSCAN_S3_REGION",
		"s3.bucket":                      "DOCSCAN_S3_BUCKET",
		"s3.endpoint":                    "DOCSCAN_S3_ENDPOINT",
		"s3.access_key":                  "DOCSCAN_S3_ACCESS_KEY",
		"s3.secret_key":                  "DOCSCAN_S3_SECRET_KEY",
		"cors.allowed_origins":           "DOCSCAN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if DOCSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
		MaxImageSizeMB:  v.GetInt64("server.max_image_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Generation = GenerationConfig{
		Provider:          v.GetString("generation.provider"),
		APIKey:            v.GetString("generation.api_key"),
		Model:             v.GetString("generation.model"),
		Endpoint:          v.GetString("generation.endpoint"),
		Temperature:       v.GetFloat64("generation.temperature"),
		TimeoutSecs:       v.GetInt("generation.timeout_secs"),
		RequestsPerMinute: v.GetInt("generation.requests_per_minute"),
	}
	cfg.OCR = OCRConfig{
		APIKey:      v.GetString("ocr.api_key"),
		Endpoint:    v.GetString("ocr.endpoint"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
	}
	cfg.Staging = StagingConfig{
		Backend: v.GetString("staging.backend"),
		Dir:     v.GetString("staging.dir"),
		Prefix:  v.GetString("staging.prefix"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
