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

// StorageService owns the per-request temp file. Files are named with a
// generated UUID, never with the client-supplied filename, so concurrent
// uploads of identically named resumes cannot collide.
type StorageService interface {
	SaveTemp(file *multipart.FileHeader) (string, error)
	Remove(path string)
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

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveTemp(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	tempName := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	tempPath := filepath.Join(s.uploadPath, tempName)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to save temp file: %w", err)
	}

	return tempPath, nil
}

// Remove deletes the temp file. Missing files are not an error: cleanup runs
// on every exit path and must be safe to call twice.
func (s *storageService) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Printf("⚠️ Failed to remove temp file %s: %v\n", path, err)
	}
}
