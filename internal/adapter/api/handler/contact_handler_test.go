package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"artfolio/internal/usecase"
)

func newContactHandler() (*fakeMessageRepo, *ContactHandler) {
	repo := &fakeMessageRepo{}
	return repo, NewContactHandler(usecase.NewContactUseCase(repo))
}

func TestSubmitMessageAtMinimumLengths(t *testing.T) {
	repo, h := newContactHandler()
	e := newEcho()

	// name and message sit exactly on the lower bounds
	c, rec := newJSONContext(e, http.MethodPost, "/api/contact",
		`{"name":"Al","email":"a@b.com","message":"1234567890"}`)

	if assert.NoError(t, h.SubmitMessage(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, repo.createCalls)
	}
}

func TestSubmitMessageNameTooShort(t *testing.T) {
	repo, h := newContactHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/contact",
		`{"name":"A","email":"a@b.com","message":"1234567890"}`)

	if assert.NoError(t, h.SubmitMessage(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name")
		assert.Zero(t, repo.createCalls)
	}
}

func TestSubmitMessageInvalidEmail(t *testing.T) {
	repo, h := newContactHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/contact",
		`{"name":"Al","email":"not-an-email","message":"1234567890"}`)

	if assert.NoError(t, h.SubmitMessage(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, repo.createCalls)
	}
}

func TestListMessages(t *testing.T) {
	repo, h := newContactHandler()
	e := newEcho()

	create, _ := newJSONContext(e, http.MethodPost, "/api/contact",
		`{"name":"Al","email":"a@b.com","message":"hello there, nice work"}`)
	assert.NoError(t, h.SubmitMessage(create))

	c, rec := newJSONContext(e, http.MethodGet, "/api/messages", "")

	if assert.NoError(t, h.ListMessages(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "hello there, nice work")
		assert.Equal(t, 1, repo.createCalls)
	}
}
