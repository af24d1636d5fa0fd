package models

import "time"

type Pdf struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	FilePath  string    `json:"filePath"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}
