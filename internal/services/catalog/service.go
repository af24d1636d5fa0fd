package catalogservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"pdfstore/internal/dto"
	"pdfstore/internal/models"
	"strconv"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "catalogService/"

const catalogCacheKey = "pdfs:all"

type CatalogService struct {
	log         *slog.Logger
	pdfRepo     PdfRepository
	cache       Cache
	fileStorage FileStorage
}

func New(
	log *slog.Logger,
	pdfRepo PdfRepository,
	cache Cache,
	fileStorage FileStorage,
) *CatalogService {
	return &CatalogService{
		log:         log,
		pdfRepo:     pdfRepo,
		cache:       cache,
		fileStorage: fileStorage,
	}
}

func (cs *CatalogService) UploadPdf(ctx context.Context, meta dto.UploadMeta, filename string, content io.Reader) (*models.Pdf, error) {
	op := pkg + "UploadPdf"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to upload pdf", slog.String("title", meta.Title), slog.String("filename", filename))

	price, err := strconv.ParseFloat(meta.Price, 64)
	if err != nil {
		log.Warn("invalid price format", slog.String("price", meta.Price))
		return nil, models.ErrInvalidParams
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)

	path, err := cs.fileStorage.SaveFile(name, content)
	if err != nil {
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrUploadFailed)
	}

	pdf := &models.Pdf{
		ID:        uuid.NewV4().String(),
		Title:     meta.Title,
		Author:    meta.Author,
		Price:     price,
		Category:  meta.Category,
		FilePath:  path,
		Tags:      parseTags(meta.Tags),
		CreatedAt: time.Now(),
	}

	err = cs.pdfRepo.CreatePdf(ctx, pdf)
	if err != nil {
		log.Error("failed to save pdf metadata", slog.String("error", err.Error()))
		_ = cs.fileStorage.DeleteFile(path)

		return nil, fmt.Errorf("%s: %w", op, models.ErrUploadFailed)
	}

	if err = cs.cache.Del(ctx, catalogCacheKey); err != nil {
		log.Error("failed to invalidate catalog cache", slog.String("error", err.Error()))
	}

	log.Debug("pdf uploaded successfully", slog.String("pdf_id", pdf.ID), slog.String("path", pdf.FilePath))

	return pdf, nil
}

func (cs *CatalogService) ListPdfs(ctx context.Context) ([]*models.Pdf, error) {
	op := pkg + "ListPdfs"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to list pdfs")

	var pdfs []*models.Pdf

	pdfsJSON, err := cs.cache.Get(ctx, catalogCacheKey)
	if err != nil || pdfsJSON == "" {
		log.Debug("catalog cache miss")

		pdfs, err = cs.pdfRepo.AllPdfs(ctx)
		if err != nil {
			log.Error("failed to list pdfs", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		pdfsJSON, err = pdfsToJSON(pdfs)
		if err != nil {
			log.Error("failed to convert pdfs to json", slog.String("error", err.Error()))
		} else {
			err = cs.cache.Set(ctx, catalogCacheKey, pdfsJSON)
			if err != nil {
				log.Error("failed to set pdfs in cache", slog.String("error", err.Error()))
			}
		}

		return pdfs, nil
	}

	pdfs, err = jsonToPdfs(pdfsJSON)
	if err != nil {
		log.Error("failed to parse json to pdfs", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("pdfs listed successfully", slog.Int("count", len(pdfs)))

	return pdfs, nil
}

func (cs *CatalogService) PdfByID(ctx context.Context, id string) (*models.Pdf, io.ReadCloser, error) {
	op := pkg + "PdfByID"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to get pdf by id", slog.String("pdf_id", id))

	pdf, err := cs.pdfRepo.PdfByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrPdfNotFound) {
			log.Warn("pdf not found", slog.String("pdf_id", id))
			return nil, nil, fmt.Errorf("%s: %w", op, models.ErrPdfNotFound)
		}
		log.Error("failed to get pdf by id", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	file, err := cs.fileStorage.LoadFile(pdf.FilePath)
	if err != nil {
		log.Error("failed to load file from storage", slog.String("error", err.Error()))
		return nil, nil, models.ErrInternal
	}

	log.Debug("pdf with content found successfully", slog.String("pdf_id", id))

	return pdf, file, nil
}

// parseTags splits a comma-separated string, trims each element and drops
// empty ones. Order is preserved.
func parseTags(s string) []string {
	tags := make([]string, 0)

	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}

func pdfsToJSON(pdfs []*models.Pdf) (string, error) {
	res, err := json.Marshal(pdfs)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToPdfs(s string) ([]*models.Pdf, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var pdfs []*models.Pdf

	if err := json.Unmarshal([]byte(s), &pdfs); err != nil {
		return nil, err
	}

	return pdfs, nil
}
