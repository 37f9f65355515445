// Command auralearn-worker runs the Temporal worker hosting the assessment
// scoring and triangulation pipeline.
package main

import (
	"log"
	"os"

	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/jermiah/auralearn-sub001/internal/worker"
	"github.com/jermiah/auralearn-sub001/pkg/events"
)

const defaultTaskQueue = "auralearn-assessments"

func main() {
	hostPort := os.Getenv("TEMPORAL_HOST_PORT")
	if hostPort == "" {
		hostPort = client.DefaultHostPort
	}
	taskQueue := os.Getenv("TEMPORAL_TASK_QUEUE")
	if taskQueue == "" {
		taskQueue = defaultTaskQueue
	}

	c, err := client.Dial(client.Options{HostPort: hostPort})
	if err != nil {
		log.Fatalf("failed to create Temporal client: %v", err)
	}
	defer c.Close()

	w := sdkworker.New(c, taskQueue, sdkworker.Options{})
	worker.RegisterAll(w, events.NewNoOpEventSink())

	if err := w.Run(sdkworker.InterruptCh()); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
