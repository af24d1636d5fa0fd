package pdfs

import (
	"context"
	"io"
	"pdfstore/internal/dto"
	"pdfstore/internal/models"
)

const pkg = "pdfsHandler/"

type PdfUploader interface {
	UploadPdf(ctx context.Context, meta dto.UploadMeta, filename string, content io.Reader) (*models.Pdf, error)
}

type PdfLister interface {
	ListPdfs(ctx context.Context) ([]*models.Pdf, error)
}

type PdfProvider interface {
	PdfByID(ctx context.Context, id string) (*models.Pdf, io.ReadCloser, error)
}
