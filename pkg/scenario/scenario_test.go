package scenario

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	"github.com/mfreeman451/dbplayground/pkg/models"
	"github.com/mfreeman451/dbplayground/pkg/objectstore"
	"github.com/mfreeman451/dbplayground/pkg/vector"
)

type mocks struct {
	files  *objectstore.MockService
	social *graph.MockService
	search *vector.MockService
	sales  *columnar.MockService
}

func newScenario(t *testing.T) (*ECommerce, *mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mocks{
		files:  objectstore.NewMockService(ctrl),
		social: graph.NewMockService(ctrl),
		search: vector.NewMockService(ctrl),
		sales:  columnar.NewMockService(ctrl),
	}

	return NewECommerce(m.files, m.social, m.search, m.sales), m
}

func TestAddProduct(t *testing.T) {
	e, m := newScenario(t)
	ctx := context.Background()

	m.files.EXPECT().
		Upload(gomock.Any(), "products/p-1/image", gomock.Any(), int64(4), "image/png").
		Return(&models.FileInfo{Name: "products/p-1/image", Size: 4}, nil)

	m.search.EXPECT().
		AddDocument(gomock.Any(), "p-1", "a fine widget", map[string]string{
			"name":     "Widget",
			"category": "Tools",
			"price":    "9.99",
		}).
		Return(nil)

	p, err := e.AddProduct(ctx, &models.Product{
		ID: "p-1", Name: "Widget", Category: "Tools", Price: 9.99,
		Description: "a fine widget",
	}, strings.NewReader("abcd"), 4, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "products/p-1/image", p.ImageKey)
}

func TestAddProductWithoutImageSkipsUpload(t *testing.T) {
	e, m := newScenario(t)

	m.search.EXPECT().
		AddDocument(gomock.Any(), "p-2", "description only", gomock.Any()).
		Return(nil)

	p, err := e.AddProduct(context.Background(), &models.Product{
		ID: "p-2", Name: "Gizmo", Description: "description only",
	}, nil, 0, "")
	require.NoError(t, err)
	assert.Empty(t, p.ImageKey)
}

func TestAddProductValidation(t *testing.T) {
	e, _ := newScenario(t)
	ctx := context.Background()

	_, err := e.AddProduct(ctx, &models.Product{Description: "x"}, nil, 0, "")
	require.ErrorIs(t, err, errMissingProductID)

	_, err = e.AddProduct(ctx, &models.Product{ID: "p-3"}, nil, 0, "")
	require.ErrorIs(t, err, errMissingDescription)
}

func TestAddCustomer(t *testing.T) {
	e, m := newScenario(t)
	ctx := context.Background()

	t.Run("without friendship", func(t *testing.T) {
		m.social.EXPECT().
			CreateUser(gomock.Any(), "alice", 34).
			Return(nil)

		require.NoError(t, e.AddCustomer(ctx, "alice", 34, ""))
	})

	t.Run("with friendship", func(t *testing.T) {
		m.social.EXPECT().
			CreateUser(gomock.Any(), "bob", 29).
			Return(nil)
		m.social.EXPECT().
			CreateFriendship(gomock.Any(), "bob", "alice").
			Return(nil)

		require.NoError(t, e.AddCustomer(ctx, "bob", 29, "alice"))
	})

	t.Run("empty name", func(t *testing.T) {
		require.ErrorIs(t, e.AddCustomer(ctx, "", 0, ""), errMissingCustomer)
	})
}

func TestRunDemo(t *testing.T) {
	e, m := newScenario(t)

	m.files.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "text/plain").
		Return(&models.FileInfo{}, nil).
		Times(len(demoProducts))

	m.search.EXPECT().
		AddDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(len(demoProducts))

	m.social.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(len(demoCustomers))

	m.social.EXPECT().
		CreateFriendship(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(len(demoCustomers) - 1)

	m.sales.EXPECT().
		SeedSampleData(gomock.Any()).
		Return(8, nil)

	m.search.EXPECT().
		SearchSimilar(gomock.Any(), gomock.Any(), 3).
		Return([]models.SearchResult{{ID: "p-1001", Score: 0.92}}, nil)

	m.sales.EXPECT().
		Analytics(gomock.Any(), columnar.QueryTotalByCategory).
		Return([]models.AnalyticsRow{{Label: "Electronics", Revenue: 500.0, Count: 6}}, nil)

	report, err := e.RunDemo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(demoProducts), report.Products)
	assert.Equal(t, len(demoCustomers), report.Customers)
	assert.Equal(t, 8, report.Sales)
	require.Len(t, report.SimilarHits, 1)
	assert.Equal(t, "p-1001", report.SimilarHits[0].ID)
	require.Len(t, report.Analytics, 1)
	assert.Equal(t, "Electronics", report.Analytics[0].Label)
}
