package dto

import (
	"log-explorer-backend/internal/model"
	"time"
)

type FileListResponse struct {
	Files []model.LogFile `json:"files"`
}

type FileContentResponse struct {
	Content  string `json:"content"`
	FileName string `json:"fileName"`
	Size     int    `json:"size"`
}

type HealthResponse struct {
	Status        string    `json:"status"`
	LogsDirectory string    `json:"logsDirectory"`
	Sessions      int       `json:"sessions"`
	Timestamp     time.Time `json:"timestamp"`
}
