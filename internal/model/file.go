package model

import "time"

// LogFile describes one file available under the logs directory.
type LogFile struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}
