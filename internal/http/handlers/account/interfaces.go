package account

import (
	"context"
	"pdfstore/internal/models"
)

const pkg = "accountHandler/"

type UserSigner interface {
	Signup(ctx context.Context, name string, username string, email string, password string) error
}

type UserAuthenticator interface {
	Login(ctx context.Context, email string, password string) (*models.User, error)
}
