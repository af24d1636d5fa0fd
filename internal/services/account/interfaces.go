package accountservice

import (
	"context"
	"pdfstore/internal/models"
)

type UserAdder interface {
	AddUser(ctx context.Context, user models.User) error
}

type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}
