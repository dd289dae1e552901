package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"artfolio/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient takes the same credential options as the Firestore
// and Firebase clients; signed URLs need the service account key material.
func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Upload streams the payload into a fresh object and makes it publicly
// readable. The returned AssetID is the object name, which delete takes back.
func (c *CloudStorageClient) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadResult, error) {
	objectName := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), extensionFor(contentType))

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	size, err := io.Copy(wc, file)
	if err != nil {
		wc.Close()
		return nil, fmt.Errorf("failed to copy file to bucket: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %v", err)
	}

	return &service.UploadResult{
		URL:     c.publicURL(objectName),
		AssetID: objectName,
		Size:    size,
	}, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, assetID string) error {
	obj := c.client.Bucket(c.bucketName).Object(assetID)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %v", assetID, err)
	}

	return nil
}

// SignedUploadURL hands the browser a short-lived PUT URL so the payload
// never passes through this server.
func (c *CloudStorageClient) SignedUploadURL(ctx context.Context, contentType, folder string) (*service.SignedUpload, error) {
	objectName := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), extensionFor(contentType))

	uploadURL, err := c.client.Bucket(c.bucketName).SignedURL(objectName, &storage.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(15 * time.Minute),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate signed URL: %v", err)
	}

	return &service.SignedUpload{
		UploadURL: uploadURL,
		URL:       c.publicURL(objectName),
		AssetID:   objectName,
	}, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func (c *CloudStorageClient) publicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/quicktime":
		return ".mov"
	default:
		return ".bin"
	}
}
