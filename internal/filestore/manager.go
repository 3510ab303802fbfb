package filestore

import (
	"errors"
	"fmt"
	"log-explorer-backend/internal/model"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrDirectoryNotFound = errors.New("logs directory not found")
	ErrFileNotFound      = errors.New("file not found")
	ErrAccessDenied      = errors.New("access to file outside the logs directory is not allowed")
)

type Manager interface {
	ListFiles() ([]model.LogFile, error)
	Open(name string) (*os.File, model.LogFile, error)
	GetRootDirectory() string
}

type fileStoreManager struct {
	rootDir string
}

func NewManager(rootDir string) Manager {
	return &fileStoreManager{
		rootDir: rootDir,
	}
}

// ListFiles returns the regular files directly under the root directory, most
// recently modified first.
func (m *fileStoreManager) ListFiles() ([]model.LogFile, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("dir", m.rootDir).Msg("Logs directory does not exist")
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, m.rootDir)
		}
		log.Error().Err(err).Str("dir", m.rootDir).Msg("Failed to read logs directory")
		return nil, fmt.Errorf("failed to read logs directory: %w", err)
	}

	files := make([]model.LogFile, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to stat file, skipping")
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, model.LogFile{
			Name:         entry.Name(),
			Path:         filepath.Join(m.rootDir, entry.Name()),
			Size:         info.Size(),
			LastModified: info.ModTime().UTC(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].LastModified.After(files[j].LastModified)
	})

	log.Debug().Str("dir", m.rootDir).Int("file_count", len(files)).Msg("Listed log files")
	return files, nil
}

// Open resolves name under the root directory and opens it. Names resolving
// outside the root fail with ErrAccessDenied.
func (m *fileStoreManager) Open(name string) (*os.File, model.LogFile, error) {
	path, err := m.resolve(name)
	if err != nil {
		return nil, model.LogFile{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.LogFile{}, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		log.Error().Err(err).Str("file", path).Msg("Failed to open log file")
		return nil, model.LogFile{}, fmt.Errorf("failed to open file %s: %w", name, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, model.LogFile{}, fmt.Errorf("failed to stat file %s: %w", name, err)
	}
	if !stat.Mode().IsRegular() {
		f.Close()
		return nil, model.LogFile{}, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}

	log.Debug().Str("file", path).Int64("size", stat.Size()).Msg("Opened log file")
	return f, model.LogFile{
		Name:         filepath.Base(path),
		Path:         path,
		Size:         stat.Size(),
		LastModified: stat.ModTime().UTC(),
	}, nil
}

func (m *fileStoreManager) resolve(name string) (string, error) {
	root, err := filepath.Abs(m.rootDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve logs directory: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(root, name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	if path == root || !strings.HasPrefix(path, root+string(filepath.Separator)) {
		log.Warn().Str("requested", name).Str("resolved", path).Msg("Rejected file access outside logs directory")
		return "", fmt.Errorf("%w: %s", ErrAccessDenied, name)
	}
	return path, nil
}

func (m *fileStoreManager) GetRootDirectory() string {
	return m.rootDir
}
