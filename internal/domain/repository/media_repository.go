package repository

import (
	"context"

	"artfolio/internal/domain/entity"
)

// MediaRepository is the storage contract shared by the four media kinds.
// The kinds only differ in document type and collection name, so one
// parameterized interface replaces four copies.
type MediaRepository[T entity.Stored] interface {
	Create(ctx context.Context, item T) error
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
}

type GraphicRepository = MediaRepository[*entity.Graphic]

type ReelRepository = MediaRepository[*entity.Reel]

type VideoRepository = MediaRepository[*entity.Video]

type ProjectRepository = MediaRepository[*entity.Project]
