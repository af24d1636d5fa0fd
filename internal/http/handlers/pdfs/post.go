package pdfs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"pdfstore/internal/dto"
	"pdfstore/internal/models"
	errutils "pdfstore/internal/utils/http_errors"
)

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pu PdfUploader) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		log.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrNoFile.Error())
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		log.Warn("no file in upload request", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrNoFile.Error())
		return
	}
	defer file.Close()

	meta := dto.UploadMeta{
		Title:    r.FormValue("title"),
		Author:   r.FormValue("author"),
		Price:    r.FormValue("price"),
		Category: r.FormValue("category"),
		Tags:     r.FormValue("tags"),
	}

	pdf, err := pu.UploadPdf(ctx, meta, header.Filename, file)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid upload params", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to upload pdf", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrUploadFailed.Error())
		return
	}

	response := dto.UploadResponse{
		Message: "PDF uploaded",
		Pdf:     pdf,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
