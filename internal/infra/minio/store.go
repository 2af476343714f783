package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"github.com/H-Ngomijana/ERM/internal/domain/port"
	"github.com/H-Ngomijana/ERM/internal/infra/evidence"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store uploads evidence snapshots to object storage so the submission
// payload can carry a URL instead of an edge-local path.
type Store struct {
	client *miniogo.Client
	bucket string
}

type StoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func NewStore(cfg StoreConfig) (*Store, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, miniogo.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

func (s *Store) SaveSnapshot(ctx context.Context, det entity.Detection, cameraID string, frame port.Frame) (string, error) {
	key := fmt.Sprintf("%s/%s", cameraID, evidence.SnapshotName(det, cameraID))

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(frame), int64(len(frame)),
		miniogo.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key), nil
}
