package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]string{
	".pdf":  FileTypePDF,
	".docx": FileTypeDOCX,
	".txt":  FileTypeTXT,
}

// StoredFile describes an uploaded resume saved to disk.
type StoredFile struct {
	Filename     string
	OriginalName string
	FileType     string
	Path         string
}

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (*StoredFile, error)
	SaveReader(originalName string, src io.Reader) (*StoredFile, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

// FileTypeOf maps a file name to its resume type, or ErrUnsupportedFileType.
func FileTypeOf(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	fileType, ok := allowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	return fileType, nil
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader) (*StoredFile, error) {
	if _, err := FileTypeOf(file.Filename); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.SaveReader(file.Filename, src)
}

// SaveReader copies src under a generated name that keeps the original
// extension.
func (s *storageService) SaveReader(originalName string, src io.Reader) (*StoredFile, error) {
	fileType, err := FileTypeOf(originalName)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredFile{
		Filename:     uniqueFilename,
		OriginalName: filepath.Base(originalName),
		FileType:     fileType,
		Path:         filePath,
	}, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
