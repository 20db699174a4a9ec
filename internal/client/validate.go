package client

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxFileSize is the largest resume the service accepts.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrEmptyFile       = errors.New("the selected file is empty")
	ErrFileTooLarge    = errors.New("file is too large, the maximum size is 5 MB")
	ErrUnsupportedType = errors.New("only PDF and DOCX files are supported")
)

// ValidateFile checks a candidate resume before anything is uploaded. The
// returned errors carry user-facing messages.
func ValidateFile(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".pdf" && ext != ".docx" {
		return ErrUnsupportedType
	}
	if size == 0 {
		return ErrEmptyFile
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}
