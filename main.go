package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/s0up4200/monkeylearn-go/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// A local .env may carry MONKEYLEARN_API_TOKEN
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd.SetVersion(version, buildTime)
	cmd.Execute(ctx)
}
