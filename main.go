package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/llermaly/clone-magicbox/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Interrupt cancels an in-flight prompt or clone; go-git removes what it
	// created. A second interrupt gets the default behaviour and kills the
	// process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	err := cli.Execute(ctx, version, commit, date)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
