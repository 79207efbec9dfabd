package config

import (
	"context"
	"log"
	"os"

	"payments_tracker/internal/config/connections/s3"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	WorkbookPath string

	// Backup is nil when the S3 mirror is disabled.
	Backup       *s3.S3
	BackupPrefix string
}

func Init(ctx context.Context) *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getenv("SERVER_PORT", "8070"),
		WorkbookPath: getenv("WORKBOOK_PATH", "payments_records.xlsx"),
		BackupPrefix: getenv("BACKUP_PREFIX", "backups"),
	}

	if getenv("BACKUP_ENABLED", "false") == "true" {
		s3c, err := s3.NewConnection(s3.ConnectionInfo{
			Endpoint:  getenv("AWS_ENDPOINT", "http://localhost:9000"),
			AccessKey: getenv("AWS_ACCESS_KEY_ID", "minioadmin"),
			SecretKey: getenv("AWS_SECRET_ACCESS_KEY", "minioadmin"),
			Region:    getenv("AWS_DEFAULT_REGION", "us-east-1"),
			Bucket:    getenv("AWS_BUCKET", "payments-backups"),
			UseSSL:    getenv("AWS_USE_SSL", "false") == "true",
		})
		if err != nil {
			log.Fatal("S3 connect error:", err)
		}
		if err := s3c.EnsureBucket(ctx); err != nil {
			log.Fatal("S3 bucket error:", err)
		}
		cfg.Backup = s3c
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
