package repository

import (
	"context"

	"artfolio/internal/domain/entity"
)

// MessageRepository deliberately exposes no update or delete: contact
// messages are append-only.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	List(ctx context.Context) ([]*entity.ContactMessage, error)
}
