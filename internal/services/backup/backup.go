// Package backup mirrors the workbook to S3-compatible storage after each
// append, so the single backing file survives the machine it lives on.
package backup

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"

	"payments_tracker/internal/config/connections/s3"
	"payments_tracker/internal/export"

	"github.com/minio/minio-go/v7"
)

type Service struct {
	S3     *s3.S3
	Prefix string
	Logger *log.Logger
}

func New(s3c *s3.S3, prefix string) *Service {
	return &Service{S3: s3c, Prefix: prefix, Logger: log.Default()}
}

// Upload copies the workbook at path to the bucket under a stable key, so
// the mirror always holds the latest full table.
func (s *Service) Upload(ctx context.Context, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}

	key := path.Join(s.Prefix, path.Base(filePath))
	info, err := s.S3.Client.PutObject(ctx, s.S3.Bucket, key, f, st.Size(),
		minio.PutObjectOptions{ContentType: export.ContentType})
	if err != nil {
		return err
	}

	s.Logger.Printf("[BACKUP][OK] bucket=%q key=%q size=%d", s.S3.Bucket, key, info.Size)
	return nil
}

// Check verifies the backup bucket is reachable.
func (s *Service) Check(ctx context.Context) error {
	ok, err := s.S3.Client.BucketExists(ctx, s.S3.Bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("s3 bucket %q not found", s.S3.Bucket)
	}
	return nil
}
