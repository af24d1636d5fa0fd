package dto

import "pdfstore/internal/models"

type UploadMeta struct {
	Title    string
	Author   string
	Price    string
	Category string
	Tags     string
}

type UploadResponse struct {
	Message string      `json:"message"`
	Pdf     *models.Pdf `json:"pdf"`
}
