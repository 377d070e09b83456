/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package columnar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/models"
)

func newTestClient(t *testing.T) (*Client, *bench.Tracker) {
	t.Helper()

	tracker := bench.NewTracker()

	client, err := New(&Config{DBPath: ":memory:"}, tracker)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, tracker
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.DBPath = ":memory:"
	require.NoError(t, cfg.Validate())
}

func TestRecordSaleAndAnalytics(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	sales := []models.Sale{
		{ProductName: "Widget", Category: "Tools", Region: "North", Quantity: 2, UnitPrice: 10.0},
		{ProductName: "Widget", Category: "Tools", Region: "South", Quantity: 1, UnitPrice: 10.0},
		{ProductName: "Gizmo", Category: "Gadgets", Region: "North", Quantity: 3, UnitPrice: 5.0},
	}

	for i := range sales {
		require.NoError(t, client.RecordSale(ctx, &sales[i]))
	}

	t.Run("total_by_category", func(t *testing.T) {
		rows, err := client.Analytics(ctx, QueryTotalByCategory)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		// Ordered by revenue descending: Tools 30.0, Gadgets 15.0.
		assert.Equal(t, "Tools", rows[0].Label)
		assert.InDelta(t, 30.0, rows[0].Revenue, 0.0001)
		assert.Equal(t, int64(2), rows[0].Count)
		assert.Equal(t, "Gadgets", rows[1].Label)
		assert.InDelta(t, 15.0, rows[1].Revenue, 0.0001)
	})

	t.Run("total_by_region", func(t *testing.T) {
		rows, err := client.Analytics(ctx, QueryTotalByRegion)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "North", rows[0].Label)
		assert.InDelta(t, 35.0, rows[0].Revenue, 0.0001)
	})

	t.Run("top_products", func(t *testing.T) {
		rows, err := client.Analytics(ctx, QueryTopProducts)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "Widget", rows[0].Label)
		assert.InDelta(t, 30.0, rows[0].Revenue, 0.0001)
		// Count carries units sold for the product query.
		assert.Equal(t, int64(3), rows[0].Count)
	})
}

func TestAnalyticsUnknownQuery(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Analytics(context.Background(), "median_by_moon_phase")
	require.ErrorIs(t, err, ErrUnknownQuery)
}

func TestRecordSaleValidation(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.RecordSale(context.Background(), &models.Sale{ProductName: "Widget"})
	require.ErrorIs(t, err, ErrInvalidSale)
}

func TestSeedSampleData(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	n, err := client.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleSales), n)

	stats, err := client.TableStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleSales)), stats.Rows)
	assert.Equal(t, int64(3), stats.Categories)
	assert.Equal(t, int64(4), stats.Regions)
	assert.False(t, stats.FirstSale.IsZero())
	assert.False(t, stats.LastSale.IsZero())
}

func TestTableStatsEmpty(t *testing.T) {
	client, _ := newTestClient(t)

	stats, err := client.TableStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Rows)
	assert.True(t, stats.FirstSale.IsZero())
	assert.True(t, stats.LastSale.IsZero())
}

func TestOperationsAreBenchmarked(t *testing.T) {
	client, tracker := newTestClient(t)
	ctx := context.Background()

	sale := models.Sale{
		ProductName: "Widget", Category: "Tools", Region: "North",
		Quantity: 1, UnitPrice: 10.0, SaleDate: time.Now(),
	}
	require.NoError(t, client.RecordSale(ctx, &sale))

	_, err := client.Analytics(ctx, QueryTotalByCategory)
	require.NoError(t, err)

	summaries := tracker.Summarize()
	require.Len(t, summaries, 2)

	for _, s := range summaries {
		assert.Equal(t, "columnar", s.Subsystem)
	}

	ops := []string{summaries[0].Operation, summaries[1].Operation}
	assert.Contains(t, ops, "record_sale")
	assert.Contains(t, ops, "analytics_query")
}

func TestUnknownQueryLeavesNoSample(t *testing.T) {
	client, tracker := newTestClient(t)

	_, err := client.Analytics(context.Background(), "nope")
	require.Error(t, err)

	assert.Empty(t, tracker.ListAll())
}
