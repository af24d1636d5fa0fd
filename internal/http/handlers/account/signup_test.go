package account

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"pdfstore/internal/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserSigner struct {
	mock.Mock
}

func (m *mockUserSigner) Signup(ctx context.Context, name string, username string, email string, password string) error {
	args := m.Called(ctx, name, username, email, password)
	return args.Error(0)
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	body := `{"name": "A", "username": "a", "email": "a@x.com", "password": "p"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()

	signer := new(mockUserSigner)
	signer.On("Signup", mock.Anything, "A", "a", "a@x.com", "p").Return(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Signup(req.Context(), logger, w, req, signer)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "User registered successfully.", string(respBody))
	signer.AssertExpectations(t)
}

func TestSignup_InvalidJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{invalid json}`))
	w := httptest.NewRecorder()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Signup(req.Context(), logger, w, req, new(mockUserSigner))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_MissingField(t *testing.T) {
	t.Parallel()

	body := `{"name": "A", "username": "a", "password": "p"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()

	signer := new(mockUserSigner)
	signer.On("Signup", mock.Anything, "A", "a", "", "p").Return(models.ErrInvalidParams)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Signup(req.Context(), logger, w, req, signer)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	signer.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	body := `{"name": "A", "username": "a", "email": "a@x.com", "password": "p"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()

	signer := new(mockUserSigner)
	signer.On("Signup", mock.Anything, "A", "a", "a@x.com", "p").Return(models.ErrUserExists)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Signup(req.Context(), logger, w, req, signer)

	assert.Equal(t, http.StatusConflict, w.Code)
	signer.AssertExpectations(t)
}

func TestSignup_ServiceError(t *testing.T) {
	t.Parallel()

	body := `{"name": "A", "username": "a", "email": "a@x.com", "password": "p"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()

	signer := new(mockUserSigner)
	signer.On("Signup", mock.Anything, "A", "a", "a@x.com", "p").Return(models.ErrInternal)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Signup(req.Context(), logger, w, req, signer)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
