package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"artfolio/internal/domain/entity"
	"artfolio/internal/usecase"
	"artfolio/pkg/errors"
)

type fakeAuthClient struct {
	uid         string
	signInErr   error
	createErr   error
	createCalls int
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.uid, nil
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	return "uid-" + fmt.Sprint(f.createCalls), nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "token-for-" + email, nil
}

type fakeUserRepo struct {
	users       []*entity.User
	createCalls int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.createCalls++
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func newAuthHandler() (*fakeUserRepo, *fakeAuthClient, *AuthHandler) {
	repo := &fakeUserRepo{}
	authClient := &fakeAuthClient{uid: "u1"}
	h := NewAuthHandler(usecase.NewAuthUseCase(repo, authClient))
	return repo, authClient, h
}

func seedAdmin(repo *fakeUserRepo) {
	admin := &entity.User{Email: "admin@example.com", Username: "admin", Role: "admin"}
	admin.SetID("u1")
	repo.users = append(repo.users, admin)
}

func TestLogin(t *testing.T) {
	repo, _, h := newAuthHandler()
	seedAdmin(repo)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"hunter2hunter2"}`)

	if assert.NoError(t, h.Login(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "token-for-admin@example.com")
		assert.Contains(t, rec.Body.String(), "admin@example.com")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	repo, authClient, h := newAuthHandler()
	seedAdmin(repo)
	authClient.signInErr = fmt.Errorf("INVALID_PASSWORD")
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong-password"}`)

	if assert.NoError(t, h.Login(c)) {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	}
}

func TestMe(t *testing.T) {
	repo, _, h := newAuthHandler()
	seedAdmin(repo)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/api/auth/me", "")
	c.Set("uid", "u1")

	if assert.NoError(t, h.Me(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@example.com")
	}
}

func TestMeWithoutUID(t *testing.T) {
	_, _, h := newAuthHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/api/auth/me", "")

	if assert.NoError(t, h.Me(c)) {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestRegisterProvisionsAdminAccount(t *testing.T) {
	repo, authClient, h := newAuthHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"longenough","username":"newadmin"}`)

	if assert.NoError(t, h.Register(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, authClient.createCalls)
		assert.Equal(t, 1, repo.createCalls)
		assert.Equal(t, "uid-1", repo.users[0].ID)
		assert.Equal(t, "admin", repo.users[0].Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, authClient, h := newAuthHandler()
	seedAdmin(repo)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"email":"admin@example.com","password":"longenough","username":"again"}`)

	if assert.NoError(t, h.Register(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, authClient.createCalls, "a taken email must be caught before the auth provider call")
	}
}

func TestRegisterShortPassword(t *testing.T) {
	repo, _, h := newAuthHandler()
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"short","username":"newadmin"}`)

	if assert.NoError(t, h.Register(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, repo.createCalls)
	}
}
