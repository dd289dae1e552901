package usecase

import "context"

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}
