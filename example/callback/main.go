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

	callback := func(batch []*spotlink.RobotState) error {
		for _, state := range batch {
			joints := 0
			if state.Joints != nil {
				joints = len(state.Joints.Names)
			}
			fmt.Printf("%s batteries=%d joints=%d transforms=%d\n",
				state.AcquisitionTime().Format(time.RFC3339Nano),
				len(state.BatteryStates),
				joints,
				len(state.Transforms),
			)
		}
		return nil
	}

	rt, err := spotlink.NewDriverRuntime(cfg, spotlink.WithSink(spotlink.NewCallbackSink("stdout", callback)))
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rt.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("runtime error: %v", err)
	}
}
