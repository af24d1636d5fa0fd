package accountservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"pdfstore/internal/models"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

const pkg = "accountService/"

type AccountService struct {
	log          *slog.Logger
	userAdder    UserAdder
	userProvider UserProvider
}

func New(
	log *slog.Logger,
	userAdder UserAdder,
	userProvider UserProvider,
) *AccountService {
	return &AccountService{
		log:          log,
		userAdder:    userAdder,
		userProvider: userProvider,
	}
}

func (a *AccountService) Signup(ctx context.Context, name string, username string, email string, password string) error {
	op := pkg + "Signup"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to sign up user")

	if name == "" || username == "" || email == "" || password == "" {
		log.Warn("missing required signup field")
		return models.ErrInvalidParams
	}

	_, err := a.userProvider.UserByEmail(ctx, email)
	if err == nil {
		log.Warn("user already exists", slog.String("email", email))
		return models.ErrUserExists
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		log.Error("failed to check existing user", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	user := models.User{
		ID:       uuid.NewV4().String(),
		Name:     name,
		Username: username,
		Email:    email,
		PassHash: passHash,
	}

	err = a.userAdder.AddUser(ctx, user)
	if err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("user already exists", slog.String("constraint", uce.Constraint))
			return models.ErrUserExists
		}

		log.Error("failed to add user", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("user signed up successfully")

	return nil
}

func (a *AccountService) Login(ctx context.Context, email string, password string) (*models.User, error) {
	op := pkg + "Login"

	log := a.log.With(slog.String("op", op))

	log.Debug("attempting to login user")

	if email == "" || password == "" {
		log.Warn("missing email or password")
		return nil, models.ErrInvalidParams
	}

	user, err := a.userProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Info("user not found", slog.String("error", models.ErrUserNotFound.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}

		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	log.Debug("user logged in successfully")

	return user, nil
}
