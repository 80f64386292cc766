package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mpontes/fatura/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := pdf.Open(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
}

func TestOpen_NotAPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no pdf header"), 0644))

	_, err := pdf.Open(path)

	assert.Error(t, err)
}
