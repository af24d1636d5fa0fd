package pdfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"pdfstore/internal/models"
	errutils "pdfstore/internal/utils/http_errors"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pl PdfLister) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	pdfs, err := pl.ListPdfs(ctx)
	if err != nil {
		log.Error("failed to list pdfs", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pdfs); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Download(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pdfID string, pp PdfProvider) {
	op := pkg + "Download"

	log = log.With(slog.String("op", op))

	pdf, file, err := pp.PdfByID(ctx, pdfID)
	if err != nil {
		if errors.Is(err, models.ErrPdfNotFound) {
			log.Warn("pdf not found", slog.String("pdf_id", pdfID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrPdfNotFound.Error())
			return
		}
		log.Error("failed to get pdf by id", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	defer file.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(pdf.FilePath)))
	w.Header().Set("Content-Type", "application/pdf")
	if _, err := io.Copy(w, file); err != nil {
		log.Error("failed to write file response", slog.String("error", err.Error()))
	}
}
