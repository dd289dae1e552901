package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"artfolio/internal/domain/entity"
	"artfolio/pkg/errors"
)

// firestoreCollection is the shared core behind every per-kind repository.
// PT is the pointer type stored in and returned from the collection.
type firestoreCollection[T any, PT interface {
	*T
	entity.Stored
}] struct {
	client *firestore.Client
	name   string
	kind   string
}

func (c *firestoreCollection[T, PT]) Create(ctx context.Context, item PT) error {
	if item.GetID() == "" {
		item.SetID(c.client.Collection(c.name).NewDoc().ID)
	}
	item.SetCreatedAt(time.Now())

	if _, err := c.client.Collection(c.name).Doc(item.GetID()).Set(ctx, item); err != nil {
		return errors.Internal("Failed to create "+c.kind, err)
	}

	return nil
}

func (c *firestoreCollection[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	var zero PT

	doc, err := c.client.Collection(c.name).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return zero, errors.NotFound(c.kind, err)
		}
		return zero, errors.Internal("Failed to get "+c.kind, err)
	}

	var item T
	if err := doc.DataTo(&item); err != nil {
		return zero, errors.Internal("Failed to parse "+c.kind+" data", err)
	}

	return PT(&item), nil
}

func (c *firestoreCollection[T, PT]) List(ctx context.Context) ([]PT, error) {
	query := c.client.Collection(c.name).OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	items := make([]PT, 0)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+c.kind+" documents", err)
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse "+c.kind+" data", err)
		}
		items = append(items, PT(&item))
	}

	return items, nil
}

func (c *firestoreCollection[T, PT]) Update(ctx context.Context, item PT) error {
	if _, err := c.client.Collection(c.name).Doc(item.GetID()).Set(ctx, item); err != nil {
		return errors.Internal("Failed to update "+c.kind, err)
	}

	return nil
}

func (c *firestoreCollection[T, PT]) Delete(ctx context.Context, id string) error {
	if _, err := c.client.Collection(c.name).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete "+c.kind, err)
	}

	return nil
}
