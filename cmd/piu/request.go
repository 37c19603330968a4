package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zx06/piu/internal/config"
	"github.com/zx06/piu/internal/console"
	"github.com/zx06/piu/internal/errors"
	"github.com/zx06/piu/internal/even"
	"github.com/zx06/piu/internal/instances"
	"github.com/zx06/piu/internal/routing"
	"github.com/zx06/piu/internal/secret"
	"github.com/zx06/piu/internal/token"
)

// requestFlags holds the flags for the request-access command
type requestFlags struct {
	User        string
	Password    string
	EvenURL     string
	OddHost     string
	Lifetime    int
	Insecure    bool
	ConfigFile  string
	Clip        bool
	Interactive bool
	Region      string
}

// requestDeps are the injectable collaborators of the request-access
// command; tests replace them with fakes.
type requestDeps struct {
	cons      *console.Console
	logger    *slog.Logger
	store     secret.Store
	tokens    token.Provider
	lister    instances.Lister
	lookup    func(host string) error
	clipboard func(text string) error
}

// NewRequestCommand creates the request-access command
func NewRequestCommand(deps *requestDeps) *cobra.Command {
	flags := &requestFlags{}

	cmd := &cobra.Command{
		Use:     "request-access [USER@]HOST REASON...",
		Aliases: []string{"req", "r"},
		Short:   "Request SSH access to a single host",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, args, flags, deps)
		},
	}

	cmd.Flags().StringVarP(&flags.User, "user", "u", envOr("USER", ""), "Username to use for authentication")
	cmd.Flags().StringVarP(&flags.Password, "password", "p", envOr("PIU_PASSWORD", ""), "Password to use for authentication")
	cmd.Flags().StringVarP(&flags.EvenURL, "even-url", "E", envOr("EVEN_URL", ""), "Even SSH Access Granting Service URL")
	cmd.Flags().StringVarP(&flags.OddHost, "odd-host", "O", envOr("ODD_HOST", ""), "Odd SSH bastion hostname")
	cmd.Flags().IntVarP(&flags.Lifetime, "lifetime", "t", 0, "Lifetime of the SSH access request in minutes (default: 60)")
	cmd.Flags().BoolVar(&flags.Insecure, "insecure", false, "Do not verify SSL certificate")
	cmd.Flags().StringVarP(&flags.ConfigFile, "config-file", "c", config.DefaultPath(), "Use alternative configuration file")
	cmd.Flags().BoolVar(&flags.Clip, "clip", false, "Copy SSH command into clipboard")
	cmd.Flags().BoolVar(&flags.Interactive, "interactive", false, "Pick a running EC2 instance interactively")
	cmd.Flags().StringVar(&flags.Region, "region", envOr("AWS_DEFAULT_REGION", ""), "AWS region for --interactive")

	return cmd
}

// runRequest drives the whole one-shot workflow: parse input, resolve
// config and routing, acquire a token, perform a single blocking call,
// report, persist the credential.
func runRequest(cmd *cobra.Command, args []string, flags *requestFlags, deps *requestDeps) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cons := deps.cons

	var target, reason string
	if flags.Interactive {
		host, why, err := pickInstance(ctx, flags, deps)
		if err != nil {
			return err
		}
		target, reason = host, why
	} else {
		if len(args) < 2 {
			return errors.New(errors.CodeCfgInvalid, "HOST and REASON arguments are required", nil)
		}
		target = args[0]
		reason = strings.TrimSpace(strings.Join(args[1:], " "))
	}
	if reason == "" {
		return errors.New(errors.CodeCfgInvalid, "reason must not be empty", nil)
	}

	authUser := flags.User
	sshUser, hostname := routing.SplitTarget(target)
	if sshUser == "" {
		sshUser = authUser
	}
	if sshUser == "" {
		return errors.New(errors.CodeCfgInvalid, "no username given and $USER is not set", nil)
	}

	cfg := config.Load(flags.ConfigFile)

	evenURL := flags.EvenURL
	if evenURL == "" {
		evenURL = cfg.EvenURL
	}
	oddHost := flags.OddHost
	if oddHost == "" {
		oddHost = cfg.OddHost
	}

	verifyTLS := !flags.Insecure
	if cfg.CACert != nil {
		verifyTLS = *cfg.CACert
	}

	for evenURL == "" {
		input, err := cons.Prompt("Please enter the Even SSH access granting service URL")
		if err != nil {
			return errors.Wrap(errors.CodeCfgInvalid, "no even URL given", nil, err)
		}
		if input == "" {
			continue
		}
		// convenience for humans: add HTTPS by default
		if !strings.HasPrefix(input, "http") {
			input = "https://" + input
		}
		if xe := even.Probe(ctx, input, !verifyTLS); xe != nil {
			cons.Error(fmt.Sprintf("Could not reach %s", input))
			continue
		}
		evenURL = input
		cfg.EvenURL = evenURL
	}

	route := routing.Resolve(hostname, oddHost)
	for route.NeedsBastion {
		input, err := cons.Prompt("Please enter the Odd SSH bastion hostname")
		if err != nil {
			return errors.Wrap(errors.CodeCfgInvalid, "no bastion host given", nil, err)
		}
		if input == "" {
			continue
		}
		if lerr := deps.lookup(input); lerr != nil {
			cons.Error(fmt.Sprintf("Could not resolve hostname %s", input))
			continue
		}
		oddHost = input
		cfg.OddHost = oddHost
		route = routing.Resolve(hostname, oddHost)
	}

	if xe := config.Save(cfg, flags.ConfigFile); xe != nil {
		deps.logger.Warn("could not persist configuration", "path", flags.ConfigFile, "error", xe)
	}

	password := flags.Password
	if password == "" {
		password = deps.store.Password(authUser)
	}
	if password == "" {
		input, err := cons.PromptPassword("Password")
		if err != nil {
			return errors.Wrap(errors.CodeCfgInvalid, "no password given", nil, err)
		}
		password = input
	}

	req := even.AccessRequest{
		Username:   sshUser,
		Hostname:   route.FirstHop,
		Reason:     reason,
		RemoteHost: route.RemoteHost,
	}
	if cmd.Flags().Changed("lifetime") {
		req.LifetimeMinutes = clampLifetime(flags.Lifetime)
	}

	accessToken, xe := deps.tokens.NamedToken(ctx, authUser, password)
	if xe != nil {
		return xe
	}

	hostVia := route.FirstHop
	if route.RemoteHost != "" {
		hostVia = fmt.Sprintf("%s via %s", route.RemoteHost, route.FirstHop)
	}
	cons.Bold(fmt.Sprintf("Requesting access to host %s for %s..", hostVia, sshUser))

	client := even.NewClient(evenURL, !verifyTLS, deps.logger)
	res, xe := client.Request(ctx, accessToken, req)
	if xe != nil {
		return xe
	}

	switch res.Verdict {
	case even.Granted:
		cons.Success(res.Body)
		sshCommand := even.SSHCommand(sshUser, route.FirstHop, route.RemoteHost)
		cons.Println("You can now access your server with the following command:")
		cons.Println(sshCommand)
		if flags.Clip {
			cons.Println("\nOr just check your clipboard and run ctrl/command + v (requires package \"xclip\" on Linux)")
			if cerr := deps.clipboard(sshCommand); cerr != nil {
				deps.logger.Warn("could not copy to clipboard", "error", cerr)
			}
		}
		if xe := deps.store.SetPassword(authUser, password); xe != nil {
			deps.logger.Warn("could not store password in keyring", "error", xe)
		}
		return nil
	case even.AuthFailed:
		cons.Println("Please check your username and password and try again.")
		if xe := deps.store.Clear(authUser); xe != nil {
			deps.logger.Warn("could not clear password in keyring", "error", xe)
		}
		return errors.New(errors.CodeAuthFailed,
			fmt.Sprintf("Server returned status %d: %s", res.Status, res.Body),
			map[string]any{"status": res.Status})
	default:
		return errors.New(errors.CodeServiceError,
			fmt.Sprintf("Server returned status %d: %s", res.Status, res.Body),
			map[string]any{"status": res.Status})
	}
}
