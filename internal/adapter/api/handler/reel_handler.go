package handler

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/domain/entity"
	"artfolio/internal/usecase"
	"artfolio/pkg/errors"
	"artfolio/pkg/response"
)

type ReelHandler struct {
	reelUseCase *usecase.ReelUseCase
}

func NewReelHandler(reelUseCase *usecase.ReelUseCase) *ReelHandler {
	return &ReelHandler{
		reelUseCase: reelUseCase,
	}
}

type createReelRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	VideoURL string `json:"videoUrl" validate:"required,url,video_ext"`
	AssetID  string `json:"asset_id" validate:"required"`
}

type updateReelRequest struct {
	ID string `json:"id" validate:"required"`
	createReelRequest
}

func (h *ReelHandler) CreateReel(c echo.Context) error {
	var req createReelRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reel, err := h.reelUseCase.Create(c.Request().Context(), &entity.Reel{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reel)
}

// ListReels returns the full collection, or a single document when the
// request carries ?id=.
func (h *ReelHandler) ListReels(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		reel, err := h.reelUseCase.GetByID(c.Request().Context(), id)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, reel)
	}

	reels, err := h.reelUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reels)
}

// UpdateReel re-runs the create validation against the full payload before
// replacing the stored fields.
func (h *ReelHandler) UpdateReel(c echo.Context) error {
	var req updateReelRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reel, err := h.reelUseCase.Update(c.Request().Context(), req.ID, &entity.Reel{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		AssetID:  req.AssetID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reel)
}

func (h *ReelHandler) DeleteReel(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Reel ID is required", nil))
	}

	if err := h.reelUseCase.Delete(c.Request().Context(), id, c.QueryParam("asset_id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Reel deleted successfully",
	})
}
