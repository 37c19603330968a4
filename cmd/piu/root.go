package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zx06/piu/internal/console"
	"github.com/zx06/piu/internal/instances"
	"github.com/zx06/piu/internal/secret"
	"github.com/zx06/piu/internal/token"
)

// NewRootCommand creates the root command with the default collaborators
// (OS keyring, OAuth2 token provider, EC2 lister, system clipboard, DNS).
func NewRootCommand(cons *console.Console, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "piu",
		Short:         "Request SSH access to a single host",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("Piu {{.Version}}\n")
	root.Flags().BoolP("version", "V", false, "Print the current version number and exit")

	deps := &requestDeps{
		cons:      cons,
		logger:    logger,
		store:     secret.NewStore(nil),
		tokens:    token.NewProvider(),
		lister:    &instances.EC2Lister{},
		lookup:    lookupHost,
		clipboard: clipboardWrite,
	}

	root.AddCommand(NewRequestCommand(deps))

	return root
}
