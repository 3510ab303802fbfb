package service

import (
	"context"
	"fmt"
	"log-explorer-backend/config"
	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/dto"
	"log-explorer-backend/internal/filestore"

	"github.com/rs/zerolog/log"
)

type FileQueryService interface {
	ListFiles(ctx context.Context) (*dto.FileListResponse, error)
	GetFileContent(ctx context.Context, fileName string) (*dto.FileContentResponse, error)
}

type fileQueryService struct {
	files   filestore.Manager
	logsCfg *config.LogsConfig
}

func NewFileQueryService(cfg *config.Config, files filestore.Manager) FileQueryService {
	return &fileQueryService{
		files:   files,
		logsCfg: &cfg.Logs,
	}
}

func (s *fileQueryService) ListFiles(ctx context.Context) (*dto.FileListResponse, error) {
	files, err := s.files.ListFiles()
	if err != nil {
		return nil, err
	}
	log.Info().Str("dir", s.files.GetRootDirectory()).Int("file_count", len(files)).Msg("Log files listed")
	return &dto.FileListResponse{Files: files}, nil
}

func (s *fileQueryService) GetFileContent(ctx context.Context, fileName string) (*dto.FileContentResponse, error) {
	f, info, err := s.files.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if s.logsCfg.MaxUploadBytes > 0 && info.Size > s.logsCfg.MaxUploadBytes {
		log.Warn().Str("file", info.Path).Int64("size", info.Size).Int64("max_bytes", s.logsCfg.MaxUploadBytes).Msg("Refusing to read oversized log file")
		return nil, fmt.Errorf("%w: %d > %d bytes", decoder.ErrFileTooLarge, info.Size, s.logsCfg.MaxUploadBytes)
	}

	content, err := decoder.DecodeReader(info.Name, f, s.logsCfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", info.Name).Int("length", len(content)).Msg("Log file read")
	return &dto.FileContentResponse{
		Content:  content,
		FileName: info.Name,
		Size:     len(content),
	}, nil
}
