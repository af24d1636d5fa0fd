package catalogservice

import (
	"context"
	"io"
	"pdfstore/internal/models"
)

type PdfRepository interface {
	CreatePdf(ctx context.Context, pdf *models.Pdf) error
	PdfByID(ctx context.Context, id string) (*models.Pdf, error)
	AllPdfs(ctx context.Context) ([]*models.Pdf, error)
}

type FileStorage interface {
	SaveFile(name string, reader io.Reader) (string, error)
	LoadFile(path string) (io.ReadCloser, error)
	DeleteFile(path string) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
