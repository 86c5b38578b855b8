package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Alessio99-a/fetchbind/internal/cli"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, buildTime)
	cli.Execute(ctx)
}
