package initializers

import (
	"context"
	"time"

	"work-forward-backend/config"
	filestorage "work-forward-backend/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	cfg := config.Conf.S3
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: *cfg.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("S3 client initialization failed")
		return
	}

	filestorage.NewInstance(minioClient, cfg.BucketName, cfg.Region, time.Duration(cfg.TimeoutSec)*time.Second)
	if err = filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("S3 connection failed, resume bucket is not available")
		return
	}
	log.Info("S3 client initialized")
}
