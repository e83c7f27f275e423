package main

import (
	"os"
	"os/signal"
	"syscall"

	"streamtube/pkg/config"
	"streamtube/pkg/logger"
	"streamtube/pkg/queue"
)

// Consumes video lifecycle events published by the API. Currently it only
// logs them; downstream fan-out (subscriber notifications, feed rebuilds)
// hangs off the same handler.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	err = queueClient.ConsumeVideoEvents(func(event map[string]interface{}) error {
		log.Info("video event received: type=%v video=%v owner=%v",
			event["type"], event["video_id"], event["owner_id"])
		return nil
	})
	if err != nil {
		log.Error("failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Worker started, waiting for video events...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Worker shutting down...")
}
