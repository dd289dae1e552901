package usecase

import (
	"context"
	"io"

	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/repository"
	"artfolio/internal/domain/service"
	"artfolio/pkg/errors"
	"artfolio/pkg/logger"
)

// ProjectUseCase adds the direct-upload create flow on top of the shared
// media behavior: projects arrive as a multipart payload instead of a
// pre-hosted URL.
type ProjectUseCase struct {
	*MediaUseCase[*entity.Project]
	assets service.AssetStorage
}

func NewProjectUseCase(repo repository.ProjectRepository, assets service.AssetStorage) *ProjectUseCase {
	return &ProjectUseCase{
		MediaUseCase: NewMediaUseCase(repo, assets, "Project"),
		assets:       assets,
	}
}

type CreateProjectInput struct {
	Title       string
	Description string
	Category    string
	Link        string
}

// CreateWithUpload pushes the file to the asset host first; nothing is
// persisted unless the upload succeeded.
func (uc *ProjectUseCase) CreateWithUpload(ctx context.Context, input CreateProjectInput, file io.Reader, contentType string) (*entity.Project, error) {
	result, err := uc.assets.Upload(ctx, file, contentType, "projects")
	if err != nil {
		logger.Error("Project image upload failed: %v", err)
		return nil, errors.Internal("Failed to upload project image", err)
	}

	project := &entity.Project{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Link:        input.Link,
		ImageURL:    result.URL,
		AssetID:     result.AssetID,
	}

	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}
