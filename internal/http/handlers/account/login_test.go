package account

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"pdfstore/internal/dto"
	"pdfstore/internal/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserAuthenticator struct {
	mock.Mock
}

func (m *mockUserAuthenticator) Login(ctx context.Context, email string, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	body := `{"email": "a@x.com", "password": "p"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	stored := &models.User{ID: "1", Name: "A", Username: "a", Email: "a@x.com", PassHash: []byte("hash")}

	authenticator := new(mockUserAuthenticator)
	authenticator.On("Login", mock.Anything, "a@x.com", "p").Return(stored, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Login(req.Context(), logger, w, req, authenticator)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed dto.ProfileResponse
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "A", parsed.Name)
	assert.Equal(t, "a", parsed.Username)
	assert.Equal(t, "a@x.com", parsed.Email)
	assert.NotContains(t, w.Body.String(), "hash")
	authenticator.AssertExpectations(t)
}

func TestLogin_InvalidJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{invalid json}`))
	w := httptest.NewRecorder()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Login(req.Context(), logger, w, req, new(mockUserAuthenticator))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_MissingField(t *testing.T) {
	t.Parallel()

	body := `{"email": "a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	authenticator := new(mockUserAuthenticator)
	authenticator.On("Login", mock.Anything, "a@x.com", "").Return(nil, models.ErrInvalidParams)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Login(req.Context(), logger, w, req, authenticator)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_UnknownEmailAndWrongPassword_SameResponse(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	unknownReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email": "ghost@x.com", "password": "p"}`))
	unknownW := httptest.NewRecorder()

	unknownAuth := new(mockUserAuthenticator)
	unknownAuth.On("Login", mock.Anything, "ghost@x.com", "p").Return(nil, models.ErrInvalidCredentials)

	Login(unknownReq.Context(), logger, unknownW, unknownReq, unknownAuth)

	wrongReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email": "a@x.com", "password": "wrong"}`))
	wrongW := httptest.NewRecorder()

	wrongAuth := new(mockUserAuthenticator)
	wrongAuth.On("Login", mock.Anything, "a@x.com", "wrong").Return(nil, models.ErrInvalidCredentials)

	Login(wrongReq.Context(), logger, wrongW, wrongReq, wrongAuth)

	assert.Equal(t, http.StatusUnauthorized, unknownW.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongW.Code)
	assert.Equal(t, unknownW.Body.String(), wrongW.Body.String())
}

func TestLogin_ServiceError(t *testing.T) {
	t.Parallel()

	body := `{"email": "a@x.com", "password": "p"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	authenticator := new(mockUserAuthenticator)
	authenticator.On("Login", mock.Anything, "a@x.com", "p").Return(nil, models.ErrInternal)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Login(req.Context(), logger, w, req, authenticator)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
