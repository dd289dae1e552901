package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"

	"artfolio/internal/domain/service"
	"artfolio/pkg/errors"
	"artfolio/pkg/response"
)

// UploadHandler hands out signed upload URLs so the browser pushes media
// straight to the asset host and only the resulting {url, asset_id} pair
// travels back through the API.
type UploadHandler struct {
	assets service.AssetStorage
}

func NewUploadHandler(assets service.AssetStorage) *UploadHandler {
	return &UploadHandler{
		assets: assets,
	}
}

type signUploadRequest struct {
	ContentType string `json:"contentType" validate:"required"`
	Folder      string `json:"folder"`
}

func (h *UploadHandler) SignUpload(c echo.Context) error {
	var req signUploadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	folder := sanitizeFolderName(req.Folder)

	signed, err := h.assets.SignedUploadURL(c.Request().Context(), req.ContentType, folder)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to generate upload URL", err))
	}

	return response.Success(c, signed)
}

func sanitizeFolderName(folder string) string {
	folder = filepath.Base(folder)

	validChars := []rune{}
	for _, char := range folder {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			validChars = append(validChars, char)
		}
	}

	sanitized := string(validChars)
	if sanitized == "" {
		return "uploads"
	}

	return sanitized
}
