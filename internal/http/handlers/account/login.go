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

func Login(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ua UserAuthenticator) {
	op := pkg + "Login"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var loginRequest dto.LoginRequest

	err = json.Unmarshal(body, &loginRequest)
	if err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	user, err := ua.Login(ctx, loginRequest.Email, loginRequest.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("failed to login user", slog.String("error", models.ErrInvalidParams.Error()))
			utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidCredentials) {
			log.Warn("failed to login user", slog.String("error", models.ErrInvalidCredentials.Error()))
			utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
			return
		}
		log.Error("failed to login user", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := dto.ProfileResponse{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
