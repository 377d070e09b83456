// Package models pkg/models/ecommerce.go
package models

import "time"

// Product is the cross-database scenario's catalog entry. The image lives in
// object storage under ImageKey, the description in the vector index.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageKey    string  `json:"image_key,omitempty"`
}

// Sale is one row in the columnar sales table.
type Sale struct {
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Region      string    `json:"region"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	SaleDate    time.Time `json:"sale_date,omitempty"`
}

// SearchResult is one hit from a vector similarity search.
type SearchResult struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AnalyticsRow is one row of a columnar analytics query. Label is the
// grouping value (category, region, or product name depending on the query).
type AnalyticsRow struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

// TableStats describes the current state of the sales table.
type TableStats struct {
	Rows       int64     `json:"rows"`
	Categories int64     `json:"categories"`
	Regions    int64     `json:"regions"`
	FirstSale  time.Time `json:"first_sale,omitempty"`
	LastSale   time.Time `json:"last_sale,omitempty"`
}

// CollectionStats describes the vector collection.
type CollectionStats struct {
	Collection string `json:"collection"`
	Points     uint64 `json:"points"`
	Dimensions int    `json:"dimensions"`
}

// DemoReport summarizes one run of the e-commerce demo workflow.
type DemoReport struct {
	Products    int            `json:"products"`
	Customers   int            `json:"customers"`
	Sales       int            `json:"sales"`
	SimilarHits []SearchResult `json:"similar_hits"`
	Analytics   []AnalyticsRow `json:"analytics"`
}
