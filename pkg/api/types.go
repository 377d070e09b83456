// Package api pkg/api/types.go
package api

import (
	"time"

	"github.com/mfreeman451/dbplayground/pkg/models"
)

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type createUserRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type friendshipRequest struct {
	User   string `json:"user"`
	Friend string `json:"friend"`
}

type friendsResponse struct {
	User    string   `json:"user"`
	Friends []string `json:"friends"`
}

type pathResponse struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Path []string `json:"path"`
}

type addDocumentRequest struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type searchRequest struct {
	Text string `json:"text"`
	TopK int    `json:"top_k,omitempty"`
}

type searchResponse struct {
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
}

type seedResponse struct {
	Inserted int `json:"inserted"`
}

type analyticsResponse struct {
	Query string               `json:"query"`
	Rows  []models.AnalyticsRow `json:"rows"`
}

type addCustomerRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	FriendOf string `json:"friend_of,omitempty"`
}

// liveUpdate is one frame on the benchmark websocket feed.
type liveUpdate struct {
	Timestamp time.Time        `json:"timestamp"`
	Summaries []models.Summary `json:"summaries"`
}
