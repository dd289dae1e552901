package usecase

import (
	"context"

	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/repository"
)

type ContactUseCase struct {
	messageRepo repository.MessageRepository
}

func NewContactUseCase(messageRepo repository.MessageRepository) *ContactUseCase {
	return &ContactUseCase{
		messageRepo: messageRepo,
	}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Message string
}

func (uc *ContactUseCase) SubmitMessage(ctx context.Context, input SubmitMessageInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *ContactUseCase) ListMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	return uc.messageRepo.List(ctx)
}
