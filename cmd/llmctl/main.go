package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"llmgateway/internal/cli"
)

// shutdownSignals cancel the command context.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	code := cli.ExecuteContext(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
