package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const pkg = "postgres/"

type Config struct {
	Addr     string
	Port     string
	User     string
	Password string
	DB       string
}

func New(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	op := pkg + "New"

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Addr, cfg.Port, cfg.User, cfg.Password, cfg.DB)

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: connect failed: %w", op, err)
	}

	return db, nil
}
