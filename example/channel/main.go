package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/maskor/spotlink"
)

func main() {
	cfg, err := spotlink.LoadConfig("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sink, batches, closeBatches := spotlink.NewChannelSink("fanout", 32)
	defer closeBatches()

	rt, err := spotlink.NewDriverRuntime(cfg, spotlink.WithSink(sink))
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go fanoutWorker("ingest", batches)

	if err := rt.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("runtime error: %v", err)
	}
}

func fanoutWorker(name string, batches <-chan []*spotlink.RobotState) {
	for batch := range batches {
		fmt.Printf("[%s] forwarding %d snapshots at %s\n", name, len(batch), time.Now().Format(time.RFC3339))
	}
}
