// Package columnar pkg/columnar/columnar.go provides the embedded
// analytical SQL client over SQLite. Every operation is timed and forwarded
// to the benchmark tracker under the "columnar" subsystem.
package columnar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/models"
)

const subsystem = "columnar"

const (
	createTablesSQL = `
	-- Sales fact table
	CREATE TABLE IF NOT EXISTS sales (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		region TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		total REAL NOT NULL,
		sale_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Indexes for the grouped analytics queries
	CREATE INDEX IF NOT EXISTS idx_sales_category ON sales(category);
	CREATE INDEX IF NOT EXISTS idx_sales_region ON sales(region);
	CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_name);

	-- Enable WAL mode for better concurrent access
	PRAGMA journal_mode=WAL;
	`

	insertSaleSQL = `
	INSERT INTO sales (product_name, category, region, quantity, unit_price, total, sale_date)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	totalByCategorySQL = `
	SELECT category, SUM(total), COUNT(*)
	FROM sales
	GROUP BY category
	ORDER BY SUM(total) DESC`

	totalByRegionSQL = `
	SELECT region, SUM(total), COUNT(*)
	FROM sales
	GROUP BY region
	ORDER BY SUM(total) DESC`

	topProductsSQL = `
	SELECT product_name, SUM(total), SUM(quantity)
	FROM sales
	GROUP BY product_name
	ORDER BY SUM(total) DESC
	LIMIT 10`

	tableStatsSQL = `
	SELECT COUNT(*), COUNT(DISTINCT category), COUNT(DISTINCT region),
	       MIN(sale_date), MAX(sale_date)
	FROM sales`
)

// Analytics query kinds.
const (
	QueryTotalByCategory = "total_by_category"
	QueryTotalByRegion   = "total_by_region"
	QueryTopProducts     = "top_products"
)

// Config holds the SQLite settings.
type Config struct {
	DBPath string `json:"db_path"` // e.g., /var/lib/dbplayground/sales.db or :memory:
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errMissingDBPath
	}

	return nil
}

// Client implements Service over an embedded SQLite database.
type Client struct {
	db   *sql.DB
	inst *bench.Instrumenter
}

// New opens the database and initializes the sales schema.
func New(cfg *Config, rec bench.Recorder) (*Client, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedOpenDB, err)
	}

	if _, err := db.Exec(createTablesSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", errFailedToInit, err)
	}

	return &Client{
		db:   db,
		inst: bench.NewInstrumenter(rec, subsystem),
	}, nil
}

// sampleSales seeds the table with a small, fixed dataset so analytics
// queries have something to chew on out of the box.
var sampleSales = []models.Sale{
	{ProductName: "Wireless Headphones", Category: "Electronics", Region: "North", Quantity: 3, UnitPrice: 89.99},
	{ProductName: "Wireless Headphones", Category: "Electronics", Region: "South", Quantity: 1, UnitPrice: 89.99},
	{ProductName: "Mechanical Keyboard", Category: "Electronics", Region: "East", Quantity: 2, UnitPrice: 129.50},
	{ProductName: "Standing Desk", Category: "Furniture", Region: "North", Quantity: 1, UnitPrice: 449.00},
	{ProductName: "Office Chair", Category: "Furniture", Region: "West", Quantity: 4, UnitPrice: 219.00},
	{ProductName: "Espresso Machine", Category: "Appliances", Region: "South", Quantity: 2, UnitPrice: 315.75},
	{ProductName: "Espresso Machine", Category: "Appliances", Region: "East", Quantity: 1, UnitPrice: 315.75},
	{ProductName: "Desk Lamp", Category: "Furniture", Region: "North", Quantity: 5, UnitPrice: 34.20},
}

// SeedSampleData inserts the built-in sample rows and returns how many were
// added.
func (c *Client) SeedSampleData(ctx context.Context) (int, error) {
	return bench.Call(c.inst, "insert_sample_data", func() (int, error) {
		for i := range sampleSales {
			sale := sampleSales[i]
			if err := c.insertSale(ctx, &sale); err != nil {
				return 0, err
			}
		}

		return len(sampleSales), nil
	})
}

// RecordSale inserts one sale. A zero Total is derived from quantity and
// unit price; a zero SaleDate defaults to now.
func (c *Client) RecordSale(ctx context.Context, sale *models.Sale) error {
	if sale.ProductName == "" || sale.Category == "" || sale.Region == "" {
		return ErrInvalidSale
	}

	return c.inst.Do("record_sale", func() error {
		return c.insertSale(ctx, sale)
	})
}

func (c *Client) insertSale(ctx context.Context, sale *models.Sale) error {
	total := sale.Total
	if total == 0 {
		total = float64(sale.Quantity) * sale.UnitPrice
	}

	saleDate := sale.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	_, err := c.db.ExecContext(ctx, insertSaleSQL,
		sale.ProductName, sale.Category, sale.Region,
		sale.Quantity, sale.UnitPrice, total, saleDate)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInsert, err)
	}

	return nil
}

// Analytics runs one of the canned grouped queries. Unknown kinds return
// ErrUnknownQuery.
func (c *Client) Analytics(ctx context.Context, query string) ([]models.AnalyticsRow, error) {
	var stmt string

	switch query {
	case QueryTotalByCategory:
		stmt = totalByCategorySQL
	case QueryTotalByRegion:
		stmt = totalByRegionSQL
	case QueryTopProducts:
		stmt = topProductsSQL
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, query)
	}

	return bench.Call(c.inst, "analytics_query", func() ([]models.AnalyticsRow, error) {
		rows, err := c.db.QueryContext(ctx, stmt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
		}
		defer rows.Close()

		out := make([]models.AnalyticsRow, 0)

		for rows.Next() {
			var row models.AnalyticsRow
			if err := rows.Scan(&row.Label, &row.Revenue, &row.Count); err != nil {
				return nil, fmt.Errorf("%w: %w", errFailedToScan, err)
			}

			out = append(out, row)
		}

		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToQuery, err)
		}

		return out, nil
	})
}

// TableStats reports row counts and the covered date range.
func (c *Client) TableStats(ctx context.Context) (*models.TableStats, error) {
	return bench.Call(c.inst, "table_stats", func() (*models.TableStats, error) {
		var (
			stats models.TableStats
			first sql.NullString
			last  sql.NullString
		)

		err := c.db.QueryRowContext(ctx, tableStatsSQL).Scan(
			&stats.Rows, &stats.Categories, &stats.Regions, &first, &last)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errFailedToScan, err)
		}

		if first.Valid {
			stats.FirstSale = parseSQLiteTime(first.String)
		}

		if last.Valid {
			stats.LastSale = parseSQLiteTime(last.String)
		}

		return &stats, nil
	})
}

// sqliteTimeLayouts covers the formats the driver writes timestamps in.
// MIN/MAX strip the column's declared type, so the values come back as text.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseSQLiteTime(s string) time.Time {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Close closes the database.
func (c *Client) Close() error {
	return c.db.Close()
}
