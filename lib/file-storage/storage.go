package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"work-forward-backend/models"
)

type impl struct {
	s3client *minio.Client
	bucket   string
	region   string
	timeout  time.Duration
}

func NewInstance(s3client *minio.Client, bucket, region string, timeout time.Duration) {
	Instance = &impl{
		s3client: s3client,
		bucket:   bucket,
		region:   region,
		timeout:  timeout,
	}
}

// UploadResume stores the resume under a submission-scoped key. The
// user-supplied filename is untrusted and never used as the object key
// verbatim.
func (i impl) UploadResume(ctx context.Context, submissionID, fileName string, file []byte) (key string, err error) {
	safeName, err := SanitizeFileName(fileName)
	if err != nil {
		return "", errors.Wrap(models.ErrStorage, err.Error())
	}
	key = fmt.Sprintf("resumes/%s/%s", submissionID, safeName)

	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()
	_, err = i.s3client.PutObject(ctx, i.bucket, key, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(models.ErrStorage, err.Error())
	}
	return key, nil
}

func (i impl) GetResume(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()
	obj, err := i.s3client.GetObject(ctx, i.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return body, nil
}

func (i impl) EnsureBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucket, minio.MakeBucketOptions{Region: i.region})
}
