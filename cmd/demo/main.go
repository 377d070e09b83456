// cmd/demo/main.go runs the cross-database e-commerce workflow once and
// prints the resulting benchmark summary.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/mfreeman451/dbplayground/pkg/bench"
	"github.com/mfreeman451/dbplayground/pkg/columnar"
	"github.com/mfreeman451/dbplayground/pkg/config"
	"github.com/mfreeman451/dbplayground/pkg/graph"
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
	tracker := bench.NewTracker()

	files, err := objectstore.New(ctx, &cfg.ObjectStorage, tracker)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	social, err := graph.New(ctx, &cfg.Graph, tracker)
	if err != nil {
		log.Fatalf("Failed to connect to graph database: %v", err)
	}
	defer func() { _ = social.Close(ctx) }()

	search, err := vector.New(ctx, &cfg.Vector, tracker)
	if err != nil {
		log.Fatalf("Failed to connect to vector database: %v", err)
	}
	defer func() { _ = search.Close() }()

	sales, err := columnar.New(&cfg.Columnar, tracker)
	if err != nil {
		log.Fatalf("Failed to open columnar database: %v", err)
	}
	defer func() { _ = sales.Close() }()

	shop := scenario.NewECommerce(files, social, search, sales)

	report, err := shop.RunDemo(ctx)
	if err != nil {
		log.Fatalf("Demo workflow failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to print report: %v", err)
	}

	for _, s := range tracker.Summarize() {
		log.Printf("%s/%s: count=%d avg=%.2fms min=%.2fms max=%.2fms",
			s.Subsystem, s.Operation, s.Count, s.AvgMS, s.MinMS, s.MaxMS)
	}
}
