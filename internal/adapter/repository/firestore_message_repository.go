package repository

import (
	"cloud.google.com/go/firestore"

	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/repository"
)

// The messages collection reuses the generic core; the narrower
// MessageRepository interface is what keeps it append-only.
func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreCollection[entity.ContactMessage, *entity.ContactMessage]{
		client: client,
		name:   "messages",
		kind:   "Message",
	}
}
