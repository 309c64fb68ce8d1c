package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Import     ImportConfig
	S3         S3Config
	Enrichment EnrichmentConfig
	Log        LogConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// ImportConfig holds import pipeline settings.
type ImportConfig struct {
	BatchSize int `mapstructure:"batch_size"`
	ChunkSize int `mapstructure:"chunk_size"`
}

// S3Config holds object storage settings for uploaded export files.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EnrichmentConfig holds settings for the company-enrichment service.
type EnrichmentConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
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

// Load reads configuration from environment variables with the ORDERSCOPE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ORDERSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "orderscope")
	v.SetDefault("db.password", "orderscope_secret")
	v.SetDefault("db.name", "orderscope_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Import defaults
	v.SetDefault("import.batch_size", 100)
	v.SetDefault("import.chunk_size", 200)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "orderscope-imports")
	v.SetDefault("s3.endpoint", "")

	// Enrichment defaults
	v.SetDefault("enrichment.base_url", "")
	v.SetDefault("enrichment.api_key", "")
	v.SetDefault("enrichment.timeout_secs", 30)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "ORDERSCOPE_SERVER_PORT",
		"server.read_timeout":     "ORDERSCOPE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "ORDERSCOPE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "ORDERSCOPE_SERVER_ENVIRONMENT",
		"db.host":                 "ORDERSCOPE_DB_HOST",
		"db.port":                 "ORDERSCOPE_DB_PORT",
		"db.user":                 "ORDERSCOPE_DB_USER",
		"db.password":             "ORDERSCOPE_DB_PASSWORD",
		"db.name":                 "ORDERSCOPE_DB_NAME",
		"db.sslmode":              "ORDERSCOPE_DB_SSLMODE",
		"db.max_open":             "ORDERSCOPE_DB_MAX_OPEN",
		"db.max_idle":             "ORDERSCOPE_DB_MAX_IDLE",
		"import.batch_size":       "ORDERSCOPE_IMPORT_BATCH_SIZE",
		"import.chunk_size":       "ORDERSCOPE_IMPORT_CHUNK_SIZE",
		"s3.region":               "ORDERSCOPE_S3_REGION",
		"s3.bucket":               "ORDERSCOPE_S3_BUCKET",
		"s3.endpoint":             "ORDERSCOPE_S3_ENDPOINT",
		"s3.access_key":           "ORDERSCOPE_S3_ACCESS_KEY",
		"s3.secret_key":           "ORDERSCOPE_S3_SECRET_KEY",
		"enrichment.base_url":     "ORDERSCOPE_ENRICHMENT_BASE_URL",
		"enrichment.api_key":      "ORDERSCOPE_ENRICHMENT_API_KEY",
		"enrichment.timeout_secs": "ORDERSCOPE_ENRICHMENT_TIMEOUT_SECS",
		"log.level":               "ORDERSCOPE_LOG_LEVEL",
		"log.format":              "ORDERSCOPE_LOG_FORMAT",
		"cors.allowed_origins":    "ORDERSCOPE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ORDERSCOPE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ORDERSCOPE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Import = ImportConfig{
		BatchSize: v.GetInt("import.batch_size"),
		ChunkSize: v.GetInt("import.chunk_size"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Enrichment = EnrichmentConfig{
		BaseURL:     v.GetString("enrichment.base_url"),
		APIKey:      v.GetString("enrichment.api_key"),
		TimeoutSecs: v.GetInt("enrichment.timeout_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
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
