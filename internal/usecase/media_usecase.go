package usecase

import (
	"context"

	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/repository"
	"artfolio/internal/domain/service"
	"artfolio/pkg/errors"
	"artfolio/pkg/logger"
)

// MediaUseCase carries the list/create/delete flow shared by graphics, reels,
// videos and projects. Field validation stays in the handlers; everything
// after validation is identical across the kinds.
type MediaUseCase[T entity.Asset] struct {
	repo   repository.MediaRepository[T]
	assets service.AssetStorage
	kind   string
}

type GraphicUseCase = MediaUseCase[*entity.Graphic]

type ReelUseCase = MediaUseCase[*entity.Reel]

type VideoUseCase = MediaUseCase[*entity.Video]

func NewMediaUseCase[T entity.Asset](repo repository.MediaRepository[T], assets service.AssetStorage, kind string) *MediaUseCase[T] {
	return &MediaUseCase[T]{
		repo:   repo,
		assets: assets,
		kind:   kind,
	}
}

func (uc *MediaUseCase[T]) Create(ctx context.Context, item T) (T, error) {
	if err := uc.repo.Create(ctx, item); err != nil {
		var zero T
		return zero, err
	}

	return item, nil
}

func (uc *MediaUseCase[T]) GetByID(ctx context.Context, id string) (T, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *MediaUseCase[T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

// Delete looks up the document before touching anything, then removes the
// asset host object before the record. A failure mid-sequence leaves a
// record pointing at a deleted asset, which a retry can still clean up; the
// reverse order would strand an asset no API call can reach anymore.
// Asset deletion failure aborts the whole operation.
func (uc *MediaUseCase[T]) Delete(ctx context.Context, id, assetID string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if assetID == "" {
		assetID = item.AssetRef()
	}

	if assetID != "" {
		if err := uc.assets.Delete(ctx, assetID); err != nil {
			logger.Error("Failed to delete %s asset %s: %v", uc.kind, assetID, err)
			return errors.Internal("Failed to delete "+uc.kind+" asset", err)
		}
	}

	return uc.repo.Delete(ctx, id)
}

// Update replaces all mutable fields of an existing document, keeping the
// stored id and creation time.
func (uc *MediaUseCase[T]) Update(ctx context.Context, id string, item T) (T, error) {
	var zero T

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	item.SetID(existing.GetID())
	item.SetCreatedAt(existing.GetCreatedAt())

	if err := uc.repo.Update(ctx, item); err != nil {
		return zero, err
	}

	return item, nil
}
