// Package api pkg/api/server.go exposes the playground over HTTP: the
// benchmark reporting endpoints plus thin CRUD routes for each database
// client and the e-commerce scenario.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	httpx "github.com/mfreeman451/dbplayground/pkg/http"
	"github.com/mfreeman451/dbplayground/pkg/models"
	"github.com/mfreeman451/dbplayground/pkg/objectstore"
	"github.com/mfreeman451/dbplayground/pkg/scenario"
	"github.com/mfreeman451/dbplayground/pkg/vector"
)

const (
	defaultLiveInterval  = 2 * time.Second
	readHeaderTimeout    = 10 * time.Second
	maxUploadMemoryBytes = 32 << 20
)

var errNoListenAddr = errors.New("api server requires a listen address")

// Options configures the API server.
type Options struct {
	ListenAddr   string
	LiveInterval time.Duration // push period for the websocket feed
	Limiter      *rate.Limiter // nil disables rate limiting
}

// Clients groups the four database client wrappers the routes call into.
type Clients struct {
	Files  objectstore.Service
	Social graph.Service
	Search vector.Service
	Sales  columnar.Service
}

// APIServer implements lifecycle.Service.
type APIServer struct {
	router       *mux.Router
	srv          *http.Server
	listenAddr   string
	liveInterval time.Duration
	metrics      bench.Store
	clients      *Clients
	shop         *scenario.ECommerce
}

// NewAPIServer wires the routes over the given tracker, clients, and
// scenario.
func NewAPIServer(opts *Options, metrics bench.Store, clients *Clients, shop *scenario.ECommerce) (*APIServer, error) {
	if opts.ListenAddr == "" {
		return nil, errNoListenAddr
	}

	liveInterval := opts.LiveInterval
	if liveInterval <= 0 {
		liveInterval = defaultLiveInterval
	}

	s := &APIServer{
		router:       mux.NewRouter(),
		listenAddr:   opts.ListenAddr,
		liveInterval: liveInterval,
		metrics:      metrics,
		clients:      clients,
		shop:         shop,
	}

	s.router.Use(httpx.CommonMiddleware)

	if opts.Limiter != nil {
		s.router.Use(httpx.RateLimit(opts.Limiter))
	}

	s.setupRoutes()

	return s, nil
}

func (s *APIServer) setupRoutes() {
	// Benchmark reporting
	s.router.HandleFunc("/api/benchmarks", s.getBenchmarks).Methods("GET")
	s.router.HandleFunc("/api/benchmarks", s.clearBenchmarks).Methods("DELETE")
	s.router.HandleFunc("/api/benchmarks/summary", s.getBenchmarkSummary).Methods("GET")
	s.router.HandleFunc("/api/benchmarks/export", s.exportBenchmarks).Methods("GET")
	s.router.HandleFunc("/api/benchmarks/live", s.liveBenchmarks).Methods("GET")
	s.router.HandleFunc("/api/benchmarks/{subsystem}", s.getSubsystemBenchmarks).Methods("GET")

	// Object storage
	s.router.HandleFunc("/api/storage/files", s.uploadFile).Methods("POST")
	s.router.HandleFunc("/api/storage/files", s.listFiles).Methods("GET")
	s.router.HandleFunc("/api/storage/files/{name:.+}", s.downloadFile).Methods("GET")
	s.router.HandleFunc("/api/storage/files/{name:.+}", s.deleteFile).Methods("DELETE")

	// Graph
	s.router.HandleFunc("/api/graph/users", s.createUser).Methods("POST")
	s.router.HandleFunc("/api/graph/friendships", s.createFriendship).Methods("POST")
	s.router.HandleFunc("/api/graph/users/{name}/friends", s.getFriends).Methods("GET")
	s.router.HandleFunc("/api/graph/users/{name}/friends-of-friends", s.getFriendsOfFriends).Methods("GET")
	s.router.HandleFunc("/api/graph/path", s.getPath).Methods("GET")
	s.router.HandleFunc("/api/graph", s.clearGraph).Methods("DELETE")

	// Vector search
	s.router.HandleFunc("/api/vector/documents", s.addDocument).Methods("POST")
	s.router.HandleFunc("/api/vector/search", s.searchSimilar).Methods("POST")
	s.router.HandleFunc("/api/vector/stats", s.getVectorStats).Methods("GET")

	// Columnar analytics
	s.router.HandleFunc("/api/columnar/sales", s.recordSale).Methods("POST")
	s.router.HandleFunc("/api/columnar/seed", s.seedSales).Methods("POST")
	s.router.HandleFunc("/api/columnar/analytics", s.getAnalytics).Methods("GET")
	s.router.HandleFunc("/api/columnar/stats", s.getColumnarStats).Methods("GET")

	// Cross-database scenario
	s.router.HandleFunc("/api/scenario/products", s.addProduct).Methods("POST")
	s.router.HandleFunc("/api/scenario/products/similar", s.findSimilarProducts).Methods("GET")
	s.router.HandleFunc("/api/scenario/customers", s.addCustomer).Methods("POST")
	s.router.HandleFunc("/api/scenario/sales", s.recordScenarioSale).Methods("POST")
	s.router.HandleFunc("/api/scenario/analytics", s.getScenarioAnalytics).Methods("GET")
	s.router.HandleFunc("/api/scenario/demo", s.runDemo).Methods("POST")
}

// Router exposes the handler for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Start implements lifecycle.Service.
func (s *APIServer) Start(_ context.Context) error {
	s.srv = &http.Server{
		Addr:              s.listenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Printf("Starting HTTP server on %s", s.listenAddr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop implements lifecycle.Service.
func (s *APIServer) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

func (*APIServer) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Benchmark handlers

func (s *APIServer) getBenchmarks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.metrics.ListAll())
}

func (s *APIServer) getBenchmarkSummary(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.metrics.Summarize())
}

func (s *APIServer) exportBenchmarks(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="benchmarks.json"`)

	if err := s.metrics.Export(w); err != nil {
		log.Printf("Error exporting benchmarks: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *APIServer) getSubsystemBenchmarks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subsystem := vars["subsystem"]

	filter := &models.SampleFilter{
		Subsystem: subsystem,
		Operation: r.URL.Query().Get("operation"),
	}

	samples := s.metrics.ListFiltered(filter)
	if len(samples) == 0 {
		http.Error(w, "No samples for subsystem", http.StatusNotFound)
		return
	}

	s.writeJSON(w, samples)
}

func (s *APIServer) clearBenchmarks(w http.ResponseWriter, _ *http.Request) {
	s.metrics.Clear()
	s.writeJSON(w, ackResponse{Success: true, Message: "metrics cleared"})
}
