package handler

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/domain/entity"
	"artfolio/internal/usecase"
	"artfolio/pkg/errors"
	"artfolio/pkg/response"
)

type GraphicHandler struct {
	graphicUseCase *usecase.GraphicUseCase
}

func NewGraphicHandler(graphicUseCase *usecase.GraphicUseCase) *GraphicHandler {
	return &GraphicHandler{
		graphicUseCase: graphicUseCase,
	}
}

type createGraphicRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	ImageURL    string `json:"imageUrl" validate:"required,url,image_ext"`
	AssetID     string `json:"asset_id" validate:"required"`
}

func (h *GraphicHandler) CreateGraphic(c echo.Context) error {
	var req createGraphicRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	graphic, err := h.graphicUseCase.Create(c.Request().Context(), &entity.Graphic{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AssetID:     req.AssetID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, graphic)
}

func (h *GraphicHandler) ListGraphics(c echo.Context) error {
	graphics, err := h.graphicUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, graphics)
}

func (h *GraphicHandler) DeleteGraphic(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Graphic ID is required", nil))
	}

	if err := h.graphicUseCase.Delete(c.Request().Context(), id, c.QueryParam("asset_id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Graphic deleted successfully",
	})
}
