package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Inference InferenceConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
}

// InferenceConfig holds settings for the multimodal model provider.
// The API key is not stored here; it is read per call via CredentialSource.
type InferenceConfig struct {
	Provider    string `mapstructure:"provider"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	Endpoint    string `mapstructure:"endpoint"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig limits inbound label images.
type UploadConfig struct {
	MaxImageSizeMB int64 `mapstructure:"max_image_size_mb"`
}

// MaxImageBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxImageBytes() int64 {
	return u.MaxImageSizeMB << 20
}

// Load reads configuration from environment variables with the LABELAUDIT_ prefix.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("LABELAUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Inference defaults
	v.SetDefault("inference.provider", "gemini")
	v.SetDefault("inference.model", "")
	v.SetDefault("inference.timeout_secs", 120)
	v.SetDefault("inference.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")
	v.SetDefault("upload.max_image_size_mb", 10)

	envBindings := map[string]string{
		"server.port":              "LABELAUDIT_SERVER_PORT",
		"server.read_timeout":      "LABELAUDIT_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "LABELAUDIT_SERVER_WRITE_TIMEOUT",
		"server.environment":       "LABELAUDIT_SERVER_ENVIRONMENT",
		"inference.provider":       "LABELAUDIT_INFERENCE_PROVIDER",
		"inference.model":          "LABELAUDIT_INFERENCE_MODEL",
		"inference.timeout_secs":   "LABELAUDIT_INFERENCE_TIMEOUT_SECS",
		"inference.endpoint":       "LABELAUDIT_INFERENCE_ENDPOINT",
		"log.level":                "LABELAUDIT_LOG_LEVEL",
		"log.format":               "LABELAUDIT_LOG_FORMAT",
		"cors.allowed_origins":     "LABELAUDIT_CORS_ALLOWED_ORIGINS",
		"upload.max_image_size_mb": "LABELAUDIT_UPLOAD_MAX_IMAGE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LABELAUDIT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LABELAUDIT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Inference = InferenceConfig{
		Provider:    v.GetString("inference.provider"),
		Model:       v.GetString("inference.model"),
		TimeoutSecs: v.GetInt("inference.timeout_secs"),
		Endpoint:    v.GetString("inference.endpoint"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitOrigins(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxImageSizeMB: v.GetInt64("upload.max_image_size_mb"),
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
