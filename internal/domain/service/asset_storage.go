package service

import (
	"context"
	"io"
)

// UploadResult is what the asset host hands back for a stored object.
// AssetID is the object name and is the only handle for a later delete.
type UploadResult struct {
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
	Size    int64  `json:"size"`
}

// SignedUpload lets a browser push the binary payload straight to the asset
// host; the client then submits URL and AssetID with the media record.
type SignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	URL       string `json:"url"`
	AssetID   string `json:"asset_id"`
}

type AssetStorage interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (*UploadResult, error)
	Delete(ctx context.Context, assetID string) error
	SignedUploadURL(ctx context.Context, contentType, folder string) (*SignedUpload, error)
	Close() error
}
