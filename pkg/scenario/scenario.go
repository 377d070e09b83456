// Package scenario pkg/scenario/scenario.go composes the four database
// clients into the cross-database e-commerce walkthrough: product images in
// object storage, descriptions in the vector index, customers in the graph,
// sales in the columnar store.
package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	"github.com/mfreeman451/dbplayground/pkg/models"
	"github.com/mfreeman451/dbplayground/pkg/objectstore"
	"github.com/mfreeman451/dbplayground/pkg/vector"
)

var (
	errMissingProductID   = errors.New("product requires an id")
	errMissingDescription = errors.New("product requires a description")
	errMissingCustomer    = errors.New("customer requires a name")
)

// ECommerce wires the four database clients together.
type ECommerce struct {
	files  objectstore.Service
	social graph.Service
	search vector.Service
	sales  columnar.Service
}

// NewECommerce creates the scenario over the given clients.
func NewECommerce(files objectstore.Service, social graph.Service, search vector.Service, sales columnar.Service) *ECommerce {
	return &ECommerce{
		files:  files,
		social: social,
		search: search,
		sales:  sales,
	}
}

// AddProduct stores the product image in object storage (when given) and
// indexes the description for similarity search. Returns the product with
// its ImageKey filled in.
func (e *ECommerce) AddProduct(ctx context.Context, p *models.Product, image io.Reader, imageSize int64, imageType string) (*models.Product, error) {
	if p.ID == "" {
		return nil, errMissingProductID
	}

	if p.Description == "" {
		return nil, errMissingDescription
	}

	if image != nil {
		key := fmt.Sprintf("products/%s/image", p.ID)

		if _, err := e.files.Upload(ctx, key, image, imageSize, imageType); err != nil {
			return nil, fmt.Errorf("store product image: %w", err)
		}

		p.ImageKey = key
	}

	metadata := map[string]string{
		"name":     p.Name,
		"category": p.Category,
		"price":    fmt.Sprintf("%.2f", p.Price),
	}

	if err := e.search.AddDocument(ctx, p.ID, p.Description, metadata); err != nil {
		return nil, fmt.Errorf("index product description: %w", err)
	}

	return p, nil
}

// FindSimilarProducts searches the description index.
func (e *ECommerce) FindSimilarProducts(ctx context.Context, description string, topK int) ([]models.SearchResult, error) {
	return e.search.SearchSimilar(ctx, description, topK)
}

// AddCustomer creates the customer in the graph and optionally links them
// to an existing customer.
func (e *ECommerce) AddCustomer(ctx context.Context, name string, age int, friendOf string) error {
	if name == "" {
		return errMissingCustomer
	}

	if err := e.social.CreateUser(ctx, name, age); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	if friendOf != "" {
		if err := e.social.CreateFriendship(ctx, name, friendOf); err != nil {
			return fmt.Errorf("link customer: %w", err)
		}
	}

	return nil
}

// RecordSale writes one sale into the columnar store.
func (e *ECommerce) RecordSale(ctx context.Context, sale *models.Sale) error {
	return e.sales.RecordSale(ctx, sale)
}

// SalesAnalytics runs one of the columnar analytics queries.
func (e *ECommerce) SalesAnalytics(ctx context.Context, query string) ([]models.AnalyticsRow, error) {
	return e.sales.Analytics(ctx, query)
}

// demoProducts is the fixed catalog the demo workflow loads.
var demoProducts = []models.Product{
	{
		ID: "p-1001", Name: "Wireless Headphones", Category: "Electronics", Price: 89.99,
		Description: "Over-ear wireless headphones with active noise cancelling and 30 hour battery",
	},
	{
		ID: "p-1002", Name: "Mechanical Keyboard", Category: "Electronics", Price: 129.50,
		Description: "Tenkeyless mechanical keyboard with hot-swappable switches and RGB backlight",
	},
	{
		ID: "p-1003", Name: "Espresso Machine", Category: "Appliances", Price: 315.75,
		Description: "Semi-automatic espresso machine with steam wand and 15 bar pump",
	},
}

// demoCustomers seed the social graph; each entry after the first is
// befriended with the previous one.
var demoCustomers = []struct {
	name string
	age  int
}{
	{name: "alice", age: 34},
	{name: "bob", age: 29},
	{name: "carol", age: 41},
}

// RunDemo seeds every database and exercises one read path per database
// kind, leaving a full set of benchmark samples behind.
func (e *ECommerce) RunDemo(ctx context.Context) (*models.DemoReport, error) {
	report := &models.DemoReport{}

	for i := range demoProducts {
		p := demoProducts[i]
		image := fmt.Sprintf("placeholder image for %s", p.Name)

		_, err := e.AddProduct(ctx, &p, bytes.NewReader([]byte(image)), int64(len(image)), "text/plain")
		if err != nil {
			return nil, fmt.Errorf("demo: add product %s: %w", p.ID, err)
		}

		report.Products++
	}

	for i, c := range demoCustomers {
		friendOf := ""
		if i > 0 {
			friendOf = demoCustomers[i-1].name
		}

		if err := e.AddCustomer(ctx, c.name, c.age, friendOf); err != nil {
			return nil, fmt.Errorf("demo: add customer %s: %w", c.name, err)
		}

		report.Customers++
	}

	n, err := e.sales.SeedSampleData(ctx)
	if err != nil {
		return nil, fmt.Errorf("demo: seed sales: %w", err)
	}

	report.Sales = n

	hits, err := e.FindSimilarProducts(ctx, "noise cancelling wireless headphones", 3)
	if err != nil {
		return nil, fmt.Errorf("demo: similarity search: %w", err)
	}

	report.SimilarHits = hits

	rows, err := e.SalesAnalytics(ctx, columnar.QueryTotalByCategory)
	if err != nil {
		return nil, fmt.Errorf("demo: analytics: %w", err)
	}

	report.Analytics = rows

	log.Printf("demo workflow complete: %d products, %d customers, %d sales",
		report.Products, report.Customers, report.Sales)

	return report, nil
}
