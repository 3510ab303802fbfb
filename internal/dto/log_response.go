package dto

import (
	"log-explorer-backend/internal/model"
	"time"
)

type LogSearchRequest struct {
	Filter         model.LogFilter
	HideAuthErrors bool
	SortBy         string
	SortOrder      string
	Page           int
	Size           int
}

type LogSearchResponse struct {
	Logs       []model.LogEntry `json:"logs"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	Stats      model.LogStats   `json:"stats"`
}

type LoadFileRequest struct {
	FileName string `json:"fileName" binding:"required"`
}

type SessionSummary struct {
	SessionID      string         `json:"sessionId"`
	FileName       string         `json:"fileName"`
	LoadedAt       time.Time      `json:"loadedAt"`
	Stats          model.LogStats `json:"stats"`
	AuthErrorCount int            `json:"authErrorCount"`
}

// FacetCount is one distinct thread or class name and how many entries carry it.
type FacetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type FacetsResponse struct {
	Threads    []FacetCount `json:"threads"`
	ClassNames []FacetCount `json:"classNames"`
}
