package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL        string
	ObjectName string
}

type FileStorageService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, fileName, folder string) (*UploadResult, error)
	GenerateSignedURL(ctx context.Context, objectName string) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
	Close() error
}
