package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"artfolio/internal/usecase"
	"artfolio/pkg/errors"
	"artfolio/pkg/logger"
	"artfolio/pkg/response"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
	maxFileSize    int64
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		maxFileSize:    10 * 1024 * 1024,
	}
}

type createProjectRequest struct {
	Title       string `form:"title" validate:"required,min=2,max=100"`
	Description string `form:"description" validate:"required,min=10,max=500"`
	Category    string `form:"category" validate:"required,oneof=Branding Motion 'Social Media' UI/UX Design Video"`
	Link        string `form:"link" validate:"required,url"`
}

// CreateProject takes the raw image as multipart form data: the text fields
// are validated before anything is uploaded, and nothing is persisted unless
// the upload succeeded.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	req := createProjectRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Link:        c.FormValue("link"),
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest("File size exceeds maximum allowed (10MB)", nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return response.Error(c, errors.BadRequest("File must be an image", nil))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	project, err := h.projectUseCase.CreateWithUpload(c.Request().Context(), usecase.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Link:        req.Link,
	}, src, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, project)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, projects)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Project ID is required", nil))
	}

	if err := h.projectUseCase.Delete(c.Request().Context(), id, ""); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Project deleted successfully",
	})
}
