package handler

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/domain/entity"
	"artfolio/internal/usecase"
	"artfolio/pkg/errors"
	"artfolio/pkg/response"
)

type VideoHandler struct {
	videoUseCase *usecase.VideoUseCase
}

func NewVideoHandler(videoUseCase *usecase.VideoUseCase) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
	}
}

// Unlike reels, videoUrl is only required to be non-empty here; the stored
// URLs include player pages without a file extension.
type createVideoRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	VideoURL string `json:"videoUrl" validate:"required"`
	AssetID  string `json:"asset_id" validate:"required"`
}

func (h *VideoHandler) CreateVideo(c echo.Context) error {
	var req createVideoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	video, err := h.videoUseCase.Create(c.Request().Context(), &entity.Video{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, video)
}

// ListVideos returns the full collection, or a single document when the
// request carries ?id=.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		video, err := h.videoUseCase.GetByID(c.Request().Context(), id)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, video)
	}

	videos, err := h.videoUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, videos)
}

func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Video ID is required", nil))
	}

	if err := h.videoUseCase.Delete(c.Request().Context(), id, c.QueryParam("asset_id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Video deleted successfully",
	})
}
