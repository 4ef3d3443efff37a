package filestorage

import (
	"context"
)

type Provider interface {
	UploadResume(ctx context.Context, submissionID, fileName string, file []byte) (key string, err error)
	GetResume(ctx context.Context, key string) ([]byte, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider
