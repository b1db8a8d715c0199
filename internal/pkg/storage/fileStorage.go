package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type FileStorage interface {
	Save(path string, data io.Reader) error
	Get(path string) (io.ReadCloser, error)
	Delete(path string) error
	Exists(path string) bool
	Path(path string) string
}

type fileStorage struct {
	basePath string
}

// NewFileStorage resolves relative paths against basePath. Absolute paths are
// used as is.
func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

// Save writes data to a uuid-named sibling first and renames it into place,
// so a failed write never leaves a truncated file at path.
func (s *fileStorage) Save(path string, data io.Reader) error {
	fullPath := s.Path(path)

	// Создаем директорию если нужно
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmpPath := filepath.Join(filepath.Dir(fullPath), "."+uuid.New().String()+".tmp")
	file, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	if _, err = io.Copy(file, data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err = os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func (s *fileStorage) Get(path string) (io.ReadCloser, error) {
	return os.Open(s.Path(path))
}

func (s *fileStorage) Delete(path string) error {
	return os.Remove(s.Path(path))
}

func (s *fileStorage) Exists(path string) bool {
	_, err := os.Stat(s.Path(path))
	return !os.IsNotExist(err)
}

func (s *fileStorage) Path(path string) string {
	if filepath.IsAbs(path) || s.basePath == "" {
		return path
	}
	return filepath.Join(s.basePath, path)
}
