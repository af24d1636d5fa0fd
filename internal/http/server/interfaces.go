package server

import (
	"context"
	"io"
	"pdfstore/internal/dto"
	"pdfstore/internal/models"
)

type CatalogService interface {
	UploadPdf(ctx context.Context, meta dto.UploadMeta, filename string, content io.Reader) (*models.Pdf, error)
	ListPdfs(ctx context.Context) ([]*models.Pdf, error)
	PdfByID(ctx context.Context, id string) (*models.Pdf, io.ReadCloser, error)
}

type AccountService interface {
	Signup(ctx context.Context, name string, username string, email string, password string) error
	Login(ctx context.Context, email string, password string) (*models.User, error)
}
