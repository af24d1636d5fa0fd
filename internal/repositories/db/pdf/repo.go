package pdfrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pdfstore/internal/entities"
	"pdfstore/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "pdfRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreatePdf(ctx context.Context, pdf *models.Pdf) error {
	op := pkg + "CreatePdf"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pdfs (id, title, author, price, category, file_path, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pdf.ID, pdf.Title, pdf.Author, pdf.Price, pdf.Category, pdf.FilePath,
		pq.StringArray(pdf.Tags), pdf.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) PdfByID(ctx context.Context, id string) (*models.Pdf, error) {
	op := pkg + "PdfByID"

	rawPdf := entities.Pdf{}

	err := r.db.GetContext(ctx, &rawPdf,
		`SELECT
			p.id AS id,
			p.title AS title,
			p.author AS author,
			p.price AS price,
			p.category AS category,
			p.file_path AS file_path,
			p.tags AS tags,
			p.created_at AS created_at
		FROM pdfs p
		WHERE p.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrPdfNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Pdf{
		ID:        rawPdf.ID,
		Title:     rawPdf.Title,
		Author:    rawPdf.Author,
		Price:     rawPdf.Price,
		Category:  rawPdf.Category,
		FilePath:  rawPdf.FilePath,
		Tags:      rawPdf.Tags,
		CreatedAt: rawPdf.CreatedAt,
	}, nil
}

func (r *repository) AllPdfs(ctx context.Context) ([]*models.Pdf, error) {
	op := pkg + "AllPdfs"

	rawPdfs := make([]entities.Pdf, 0)

	err := r.db.SelectContext(ctx, &rawPdfs,
		`SELECT
			p.id AS id,
			p.title AS title,
			p.author AS author,
			p.price AS price,
			p.category AS category,
			p.file_path AS file_path,
			p.tags AS tags,
			p.created_at AS created_at
		FROM pdfs p
		ORDER BY p.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pdfs := make([]*models.Pdf, 0)

	for _, rawPdf := range rawPdfs {
		pdfs = append(pdfs, &models.Pdf{
			ID:        rawPdf.ID,
			Title:     rawPdf.Title,
			Author:    rawPdf.Author,
			Price:     rawPdf.Price,
			Category:  rawPdf.Category,
			FilePath:  rawPdf.FilePath,
			Tags:      rawPdf.Tags,
			CreatedAt: rawPdf.CreatedAt,
		})
	}

	return pdfs, nil
}
