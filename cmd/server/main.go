package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Ruhan116/CLIR/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeSearcherService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	server.Log.Info("CLIR search API started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	server.Log.Info("shutting down")
}
