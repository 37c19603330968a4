package main

import (
	"os"

	"github.com/zx06/piu/internal/console"
	"github.com/zx06/piu/internal/errors"
	"github.com/zx06/piu/internal/log"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// run is the main entry point
func run() int {
	cons := console.New(os.Stdin, os.Stdout, os.Stderr)
	logger := log.New(os.Stderr)
	if os.Getenv("PIU_DEBUG") != "" {
		logger = log.NewDebug(os.Stderr)
	}

	root := NewRootCommand(cons, logger)

	if err := root.Execute(); err != nil {
		pe := normalizeErr(err)
		cons.Error(pe.Message)
		return int(errors.ExitCodeFor(pe.Code))
	}

	return int(errors.ExitOK)
}
