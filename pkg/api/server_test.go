package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	"github.com/mfreeman451/dbplayground/pkg/models"
)

func newTestServer(t *testing.T, tracker bench.Store, clients *Clients) *APIServer {
	t.Helper()

	if clients == nil {
		clients = &Clients{}
	}

	s, err := NewAPIServer(&Options{ListenAddr: ":0"}, tracker, clients, nil)
	require.NoError(t, err)

	return s
}

func TestNewAPIServerRequiresListenAddr(t *testing.T) {
	_, err := NewAPIServer(&Options{}, bench.NewTracker(), &Clients{}, nil)
	require.Error(t, err)
}

func TestGetBenchmarks(t *testing.T) {
	tracker := bench.NewTracker()
	tracker.Record("graph", "create_user", 12.5, nil)
	tracker.Record("vector", "search", 40.0, nil)

	s := newTestServer(t, tracker, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/benchmarks", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var samples []models.Sample
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &samples))
	require.Len(t, samples, 2)
	assert.Equal(t, "graph", samples[0].Subsystem)
	assert.InDelta(t, 40.0, samples[1].DurationMS, 0.0001)
}

func TestGetBenchmarkSummary(t *testing.T) {
	tracker := bench.NewTracker()
	tracker.Record("graph", "create_user", 12.5, nil)
	tracker.Record("graph", "create_user", 7.5, nil)

	s := newTestServer(t, tracker, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/benchmarks/summary", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []models.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 10.0, summaries[0].AvgMS, 0.0001)
}

func TestGetSubsystemBenchmarks(t *testing.T) {
	tracker := bench.NewTracker()
	tracker.Record("graph", "create_user", 1.0, nil)
	tracker.Record("vector", "search", 2.0, nil)

	s := newTestServer(t, tracker, nil)

	t.Run("known subsystem", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/benchmarks/graph", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var samples []models.Sample
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &samples))
		require.Len(t, samples, 1)
		assert.Equal(t, "graph", samples[0].Subsystem)
	})

	t.Run("operation filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/benchmarks/vector?operation=search", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown subsystem is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/benchmarks/columnar", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestClearBenchmarks(t *testing.T) {
	tracker := bench.NewTracker()
	tracker.Record("graph", "create_user", 1.0, nil)

	s := newTestServer(t, tracker, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/benchmarks", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var ack ackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Success)

	assert.Empty(t, tracker.ListAll())
}

func TestExportBenchmarks(t *testing.T) {
	tracker := bench.NewTracker()
	tracker.Record("columnar", "record_sale", 3.0, nil)

	s := newTestServer(t, tracker, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/benchmarks/export", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "benchmarks.json")

	var samples []models.Sample
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &samples))
	require.Len(t, samples, 1)
}

func TestGetAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sales := columnar.NewMockService(ctrl)
	s := newTestServer(t, bench.NewTracker(), &Clients{Sales: sales})

	t.Run("default query", func(t *testing.T) {
		sales.EXPECT().
			Analytics(gomock.Any(), columnar.QueryTotalByCategory).
			Return([]models.AnalyticsRow{{Label: "Electronics", Revenue: 500, Count: 3}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/columnar/analytics", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp analyticsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, columnar.QueryTotalByCategory, resp.Query)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "Electronics", resp.Rows[0].Label)
	})

	t.Run("unknown query is a bad request", func(t *testing.T) {
		sales.EXPECT().
			Analytics(gomock.Any(), "bogus").
			Return(nil, fmt.Errorf("%w: %q", columnar.ErrUnknownQuery, "bogus"))

		req := httptest.NewRequest(http.MethodGet, "/api/columnar/analytics?query=bogus", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordSaleValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sales := columnar.NewMockService(ctrl)
	sales.EXPECT().
		RecordSale(gomock.Any(), gomock.Any()).
		Return(columnar.ErrInvalidSale)

	s := newTestServer(t, bench.NewTracker(), &Clients{Sales: sales})

	body, err := json.Marshal(models.Sale{ProductName: "Widget"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/columnar/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPathNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := graph.NewMockService(ctrl)
	social.EXPECT().
		ShortestPath(gomock.Any(), "alice", "zoe").
		Return(nil, fmt.Errorf("%w: alice -> zoe", graph.ErrNoPath))

	s := newTestServer(t, bench.NewTracker(), &Clients{Social: social})

	req := httptest.NewRequest(http.MethodGet, "/api/graph/path?from=alice&to=zoe", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUserBadRequest(t *testing.T) {
	s := newTestServer(t, bench.NewTracker(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/graph/users", bytes.NewReader([]byte(`{"age": 3}`)))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	s, err := NewAPIServer(&Options{
		ListenAddr: ":0",
		Limiter:    rate.NewLimiter(rate.Every(time.Hour), 1),
	}, bench.NewTracker(), &Clients{}, nil)
	require.NoError(t, err)

	first := httptest.NewRecorder()
	s.Router().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/benchmarks", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	s.Router().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/benchmarks", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
