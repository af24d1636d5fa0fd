package account

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"pdfstore/internal/dto"
	"pdfstore/internal/models"
	utils "pdfstore/internal/utils/http_errors"
)

func Signup(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, us UserSigner) {
	op := pkg + "Signup"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var signupRequest dto.SignupRequest

	err = json.Unmarshal(body, &signupRequest)
	if err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	err = us.Signup(ctx, signupRequest.Name, signupRequest.Username, signupRequest.Email, signupRequest.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("failed to sign up user", slog.String("error", models.ErrInvalidParams.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		if errors.Is(err, models.ErrUserExists) {
			log.Warn("failed to sign up user", slog.String("error", models.ErrUserExists.Error()))
			utils.WriteJSONError(w, http.StatusConflict, models.ErrUserExists.Error())
			return
		}
		log.Error("failed to sign up user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write([]byte("User registered successfully.")); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
