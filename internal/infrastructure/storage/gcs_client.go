package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"tutorconnect/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

// UploadFile stores a lesson material under the owner's folder and returns
// the object's public URL plus the object name needed for later signed reads
// and deletes.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, fileName, folder string) (*service.UploadResult, error) {
	objectName := fmt.Sprintf("%s/%s-%s", folder, time.Now().Format("20060102150405"), uuid.New().String())

	switch fileType {
	case "application/pdf":
		objectName += ".pdf"
	case "application/msword":
		objectName += ".doc"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		objectName += ".docx"
	case "application/vnd.ms-powerpoint":
		objectName += ".ppt"
	case "application/vnd.openxmlformats-officedocument.presentationml.presentation":
		objectName += ".pptx"
	case "application/vnd.ms-excel":
		objectName += ".xls"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		objectName += ".xlsx"
	case "text/plain":
		objectName += ".txt"
	default:
		objectName += ".bin"
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	writer := obj.NewWriter(ctx)
	writer.ContentType = fileType
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%q", fileName)

	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write object: %v", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize object: %v", err)
	}

	return &service.UploadResult{
		URL:        fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName),
		ObjectName: objectName,
	}, nil
}

// GenerateSignedURL issues a one-hour download link.
func (c *CloudStorageClient) GenerateSignedURL(ctx context.Context, objectName string) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(time.Hour),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign URL: %v", err)
	}

	return url, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, objectName string) error {
	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
