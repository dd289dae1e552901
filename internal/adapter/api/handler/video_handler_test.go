package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"artfolio/internal/domain/entity"
	"artfolio/internal/usecase"
)

func newVideoHandler() (*fakeMediaRepo[*entity.Video], *fakeAssetStorage, *VideoHandler) {
	repo := &fakeMediaRepo[*entity.Video]{}
	assets := &fakeAssetStorage{}
	h := NewVideoHandler(usecase.NewMediaUseCase[*entity.Video](repo, assets, "Video"))
	return repo, assets, h
}

func TestCreateVideoAcceptsPlayerPageURL(t *testing.T) {
	repo, _, h := newVideoHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/videos",
		`{"title":"Launch teaser","videoUrl":"https://player.example/watch/abc123","asset_id":"videos/v1"}`)

	if assert.NoError(t, h.CreateVideo(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, repo.createCalls)
	}
}

func TestCreateVideoEmptyURL(t *testing.T) {
	repo, _, h := newVideoHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/videos",
		`{"title":"Launch teaser","videoUrl":"","asset_id":"videos/v1"}`)

	if assert.NoError(t, h.CreateVideo(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, repo.createCalls)
	}
}

func TestGetVideoByID(t *testing.T) {
	repo, _, h := newVideoHandler()
	e := newEcho()

	video := &entity.Video{Title: "Launch teaser", VideoURL: "https://player.example/watch/abc", AssetID: "videos/v1"}
	video.SetID("v1")
	repo.items = append(repo.items, video)

	c, rec := newJSONContext(e, http.MethodGet, "/api/video?id=v1", "")

	if assert.NoError(t, h.ListVideos(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Launch teaser")
	}
}

func TestGetVideoByIDNotFound(t *testing.T) {
	_, _, h := newVideoHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/api/video?id=missing", "")

	if assert.NoError(t, h.ListVideos(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestDeleteVideoCascades(t *testing.T) {
	repo, assets, h := newVideoHandler()
	e := newEcho()

	video := &entity.Video{Title: "Teaser", VideoURL: "https://player.example/watch/abc", AssetID: "videos/v1"}
	video.SetID("v1")
	repo.items = append(repo.items, video)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/videos?id=v1", "")

	if assert.NoError(t, h.DeleteVideo(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"videos/v1"}, assets.deleted)
		assert.Empty(t, repo.items)
	}
}
