package handler

import (
	"github.com/labstack/echo/v4"

	"artfolio/internal/usecase"
	"artfolio/pkg/errors"
	"artfolio/pkg/response"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email,min=5,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.contactUseCase.SubmitMessage(c.Request().Context(), usecase.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.contactUseCase.ListMessages(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
