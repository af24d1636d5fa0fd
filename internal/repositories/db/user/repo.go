package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pdfstore/internal/entities"
	"pdfstore/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "userRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) AddUser(ctx context.Context, user models.User) error {
	op := pkg + "AddUser"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users(id, name, username, email, pass_hash) VALUES($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Username, user.Email, user.PassHash)

	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == "23505" {
				return &models.UniqueConstraintError{
					Constraint: pgErr.Constraint,
					Err:        models.ErrUNIQUEConstraintFailed,
				}
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	op := pkg + "UserByEmail"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.name AS name,
			u.username AS username,
			u.email AS email,
			u.pass_hash AS pass_hash
		FROM users u
		WHERE u.email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.User{
		ID:       rawUser.ID,
		Name:     rawUser.Name,
		Username: rawUser.Username,
		Email:    rawUser.Email,
		PassHash: rawUser.PassHash,
	}, nil
}
