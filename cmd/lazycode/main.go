// Package main is the entry point for the lazycode application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/lazycode/internal/bootstrap"
	"github.com/chmouel/lazycode/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	if err := bootstrap.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
