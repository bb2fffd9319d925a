// Package main is the entry point for the grantctl CLI.
//
// grantctl creates and manages grant programs on a GrantThrive backend. The
// create command walks council staff through a four-step wizard; submit,
// validate and archive work on draft files for scripting.
//
// For detailed usage information, run:
//
//	grantctl --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grantthrive/grantctl/cmd/grantctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
