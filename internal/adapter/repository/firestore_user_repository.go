package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/repository"
	"artfolio/pkg/errors"
)

type firestoreUserRepository struct {
	firestoreCollection[entity.User, *entity.User]
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		firestoreCollection: firestoreCollection[entity.User, *entity.User]{
			client: client,
			name:   "users",
			kind:   "User",
		},
	}
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection(r.name).Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User", nil)
		}
		return nil, errors.Internal("Failed to query user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}
