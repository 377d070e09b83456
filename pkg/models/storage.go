// Package models pkg/models/storage.go
package models

import "time"

// FileInfo describes one object held in the object store.
type FileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	ContentType  string    `json:"content_type,omitempty"`
}
