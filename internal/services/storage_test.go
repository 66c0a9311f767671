package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTypeOf(t *testing.T) {
	tests := map[string]string{
		"cv.pdf":         FileTypePDF,
		"CV.PDF":         FileTypePDF,
		"resume.docx":    FileTypeDOCX,
		"notes.v2.txt":   FileTypeTXT,
		"archive.tar.gz": "",
		"noext":          "",
		"old.doc":        "",
	}

	for name, want := range tests {
		got, err := FileTypeOf(name)
		if want == "" {
			assert.ErrorIs(t, err, ErrUnsupportedFileType, name)
			continue
		}
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestStorageService_SaveReader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	stored, err := storage.SaveReader("../../Asha Resume.TXT", strings.NewReader("resume body"))
	require.NoError(t, err)

	assert.Equal(t, FileTypeTXT, stored.FileType)
	assert.Equal(t, "Asha Resume.TXT", stored.OriginalName)
	assert.True(t, strings.HasPrefix(stored.Filename, "resume_"))
	assert.True(t, strings.HasSuffix(stored.Filename, ".txt"))
	assert.Equal(t, storage.GetFilePath(stored.Filename), stored.Path)

	raw, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(raw))

	require.NoError(t, storage.DeleteFile(stored.Filename))
	_, err = os.Stat(stored.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageService_RejectsUnsupported(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	_, err := storage.SaveReader("resume.exe", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrUnsupportedFileType)
}
