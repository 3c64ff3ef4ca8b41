package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vercel/cli/internal/cli"
	"github.com/vercel/cli/iostreams"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	io := iostreams.System()

	return cli.Run(ctx, io, os.Args[1:]...)
}
