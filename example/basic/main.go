package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/maskor/spotlink"
)

func main() {
	cfg, err := spotlink.LoadConfig("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rt, err := spotlink.NewDriverRuntime(cfg)
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rt.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("driver runtime exited: %v", err)
	}
}
