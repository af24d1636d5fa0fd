package filerepo

import (
	"io"
	"path/filepath"
	"pdfstore/internal/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFile_RoundTrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	repo := NewRepository(root)

	content := "%PDF-1.4 fake pdf body"

	path, err := repo.SaveFile("1700000000000-intro.pdf", strings.NewReader(content))
	require.NoError(t, err)

	assert.NotContains(t, path, "\\")
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "1700000000000-intro.pdf")), path)

	f, err := repo.LoadFile(path)
	require.NoError(t, err)
	defer f.Close()

	loaded, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, string(loaded))
}

func TestSaveFile_CreatesRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "uploads")
	repo := NewRepository(root)

	_, err := repo.SaveFile("doc.pdf", strings.NewReader("data"))
	assert.NoError(t, err)
}

func TestLoadFile_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewRepository(t.TempDir())

	_, err := repo.LoadFile("missing/path.pdf")
	assert.ErrorIs(t, err, models.ErrPdfNotFound)
}

func TestDeleteFile_RemovesBlob(t *testing.T) {
	t.Parallel()

	repo := NewRepository(t.TempDir())

	path, err := repo.SaveFile("doc.pdf", strings.NewReader("data"))
	require.NoError(t, err)

	err = repo.DeleteFile(path)
	assert.NoError(t, err)

	_, err = repo.LoadFile(path)
	assert.ErrorIs(t, err, models.ErrPdfNotFound)
}

func TestDeleteFile_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewRepository(t.TempDir())

	err := repo.DeleteFile("missing/path.pdf")
	assert.ErrorIs(t, err, models.ErrPdfNotFound)
}
