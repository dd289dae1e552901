package handler

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"artfolio/internal/adapter/api"
	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/service"
	"artfolio/pkg/errors"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type fakeMediaRepo[T entity.Asset] struct {
	items       []T
	createCalls int
}

func (f *fakeMediaRepo[T]) Create(ctx context.Context, item T) error {
	f.createCalls++
	item.SetID(fmt.Sprintf("doc-%d", f.createCalls))
	item.SetCreatedAt(time.Now())
	f.items = append(f.items, item)
	return nil
}

func (f *fakeMediaRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	for _, item := range f.items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, errors.NotFound("Item", nil)
}

func (f *fakeMediaRepo[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, len(f.items))
	copy(out, f.items)
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetCreatedAt().After(out[j].GetCreatedAt())
	})
	return out, nil
}

func (f *fakeMediaRepo[T]) Update(ctx context.Context, item T) error {
	for i, existing := range f.items {
		if existing.GetID() == item.GetID() {
			f.items[i] = item
			return nil
		}
	}
	return errors.NotFound("Item", nil)
}

func (f *fakeMediaRepo[T]) Delete(ctx context.Context, id string) error {
	for i, item := range f.items {
		if item.GetID() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAssetStorage struct {
	deleted     []string
	uploadErr   error
	uploadCalls int
}

func (f *fakeAssetStorage) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadResult, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &service.UploadResult{
		URL:     fmt.Sprintf("https://storage.googleapis.com/test-bucket/%s/upload-%d.jpg", folder, f.uploadCalls),
		AssetID: fmt.Sprintf("%s/upload-%d.jpg", folder, f.uploadCalls),
		Size:    42,
	}, nil
}

func (f *fakeAssetStorage) Delete(ctx context.Context, assetID string) error {
	f.deleted = append(f.deleted, assetID)
	return nil
}

func (f *fakeAssetStorage) SignedUploadURL(ctx context.Context, contentType, folder string) (*service.SignedUpload, error) {
	return &service.SignedUpload{
		UploadURL: "https://upload.example/put",
		URL:       "https://storage.googleapis.com/test-bucket/" + folder + "/obj",
		AssetID:   folder + "/obj",
	}, nil
}

func (f *fakeAssetStorage) Close() error {
	return nil
}

type fakeMessageRepo struct {
	messages    []*entity.ContactMessage
	createCalls int
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	f.createCalls++
	message.SetID(fmt.Sprintf("msg-%d", f.createCalls))
	message.SetCreatedAt(time.Now())
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	out := make([]*entity.ContactMessage, len(f.messages))
	copy(out, f.messages)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
