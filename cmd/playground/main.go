// cmd/playground/main.go

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/mfreeman451/dbplayground/pkg/api"
	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/config"
	"github.com/mfreeman451/dbplayground/pkg/graph"
	"github.com/mfreeman451/dbplayground/pkg/lifecycle"
	"github.com/mfreeman451/dbplayground/pkg/objectstore"
	"github.com/mfreeman451/dbplayground/pkg/scenario"
	"github.com/mfreeman451/dbplayground/pkg/vector"
)

func main() {
	configPath := flag.String("config", "/etc/dbplayground/playground.json", "Path to config file")
	flag.Parse()

	var cfg config.PlaygroundConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// The tracker is the single metrics store for the process; every client
	// below records into it and the API reads from it.
	tracker := bench.NewTracker()

	files, err := objectstore.New(ctx, &cfg.ObjectStorage, tracker)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	social, err := graph.New(ctx, &cfg.Graph, tracker)
	if err != nil {
		log.Fatalf("Failed to connect to graph database: %v", err)
	}
	defer func() {
		if err := social.Close(ctx); err != nil {
			log.Printf("Error closing graph driver: %v", err)
		}
	}()

	search, err := vector.New(ctx, &cfg.Vector, tracker)
	if err != nil {
		log.Fatalf("Failed to connect to vector database: %v", err)
	}
	defer func() {
		if err := search.Close(); err != nil {
			log.Printf("Error closing vector client: %v", err)
		}
	}()

	sales, err := columnar.New(&cfg.Columnar, tracker)
	if err != nil {
		log.Fatalf("Failed to open columnar database: %v", err)
	}
	defer func() {
		if err := sales.Close(); err != nil {
			log.Printf("Error closing columnar database: %v", err)
		}
	}()

	shop := scenario.NewECommerce(files, social, search, sales)

	var limiter *rate.Limiter
	if cfg.RequestRate > 0 {
		burst := cfg.RequestBurst
		if burst < 1 {
			burst = 1
		}

		limiter = rate.NewLimiter(rate.Limit(cfg.RequestRate), burst)
	}

	apiServer, err := api.NewAPIServer(
		&api.Options{
			ListenAddr:   cfg.ListenAddr,
			LiveInterval: time.Duration(cfg.LiveInterval),
			Limiter:      limiter,
		},
		tracker,
		&api.Clients{
			Files:  files,
			Social: social,
			Search: search,
			Sales:  sales,
		},
		shop,
	)
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	if err := lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		ServiceName: "playground",
		Service:     apiServer,
	}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
