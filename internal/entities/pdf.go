package entities

import (
	"time"

	"github.com/lib/pq"
)

type Pdf struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Author    string         `db:"author"`
	Price     float64        `db:"price"`
	Category  string         `db:"category"`
	FilePath  string         `db:"file_path"`
	Tags      pq.StringArray `db:"tags"`
	CreatedAt time.Time      `db:"created_at"`
}
