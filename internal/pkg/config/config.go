package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Media    MediaConfig
	Accounts AccountsConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Payment  PaymentConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	TempDir     string
	UploadsDir  string
	MaxFileSize int64 // bytes, the single configurable ceiling
	MemoryLimit int64 // bytes; larger ingests buffer to disk
	CleanupAge  int   // hours before a temp buffer is purged
}

type MediaConfig struct {
	Driver       string // media_api | s3 | gcs | local
	BaseURL      string // media API upload endpoint base
	DeliveryURL  string // base for derived-asset retrieval URLs
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
	S3Bucket     string
	S3Region     string
	GCSBucket    string
	GCSCredsJSON string
}

type AccountsConfig struct {
	Driver string // memory | redis | postgres
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	AutoMig  bool
}

type RedisConfig struct {
	Host string
	Port string
}

type PaymentConfig struct {
	BaseURL       string
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

type CORSConfig struct {
	AllowedOrigins string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Upload: UploadConfig{
			TempDir:     getEnv("UPLOAD_TEMP_DIR", "temp_uploads"),
			UploadsDir:  getEnv("UPLOAD_DIR", "uploads"),
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 100*1024*1024), // 100MB
			MemoryLimit: getEnvAsInt64("UPLOAD_MEMORY_LIMIT", 16*1024*1024),   // 16MB
			CleanupAge:  getEnvAsInt("CLEANUP_MAX_AGE_HOURS", 24),
		},
		Media: MediaConfig{
			Driver:       getEnv("MEDIA_STORAGE_DRIVER", "media_api"),
			BaseURL:      getEnv("MEDIA_API_BASE_URL", "https://api.mediastore.example.com"),
			DeliveryURL:  getEnv("MEDIA_DELIVERY_URL", "https://res.mediastore.example.com"),
			CloudName:    getEnv("MEDIA_API_CLOUD_NAME", ""),
			APIKey:       getEnv("MEDIA_API_KEY", ""),
			APISecret:    getEnv("MEDIA_API_SECRET", ""),
			UploadFolder: getEnv("MEDIA_UPLOAD_FOLDER", "makecut"),
			S3Bucket:     getEnv("S3_BUCKET", ""),
			S3Region:     getEnv("S3_REGION", "eu-central-1"),
			GCSBucket:    getEnv("GCS_BUCKET", ""),
			GCSCredsJSON: getEnv("GCS_CREDENTIALS_JSON", ""),
		},
		Accounts: AccountsConfig{
			Driver: getEnv("ACCOUNT_STORE_DRIVER", "memory"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "makecut"),
			AutoMig:  getEnv("RUN_AUTO_MIGRATION", "false") == "true",
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Payment: PaymentConfig{
			BaseURL:       getEnv("PAYMENT_API_BASE_URL", "https://api.checkout.example.com"),
			SecretKey:     getEnv("PAYMENT_SECRET_KEY", ""),
			WebhookSecret: getEnv("WEBHOOK_SIGNING_SECRET", ""),
			SuccessURL:    getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success"),
			CancelURL:     getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/cancel"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
	}

	return config
}

// EnsureDirs creates the upload and temp dirs configured for this process.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Upload.TempDir, c.Upload.UploadsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

func (c *CORSConfig) Origins() []string {
	return strings.Split(c.AllowedOrigins, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
