package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ryo246912/gdvm/internal/config"
	"github.com/ryo246912/gdvm/internal/github"
	"github.com/ryo246912/gdvm/internal/logger"
	"github.com/ryo246912/gdvm/internal/service"
	"github.com/ryo246912/gdvm/internal/ui"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags
var version = "dev"

func runCommand(ctx context.Context, out io.Writer, envFile string) error {
	// Load configuration before touching the network
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logger.SetDebug(cfg.Debug)

	var httpLog io.Writer
	if cfg.Debug {
		httpLog = os.Stderr
	}

	// Initialize GitHub client
	client, err := github.NewClient(github.Options{
		Host:      config.Host,
		Token:     cfg.Token,
		UserAgent: config.UserAgent,
		Repo:      github.Repository{Owner: config.Owner, Name: config.Repo},
		PerPage:   config.PerPage,
		HTTPLog:   httpLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	printer := &ui.DefaultPrinter{Out: out, ArchiveURL: config.ArchiveURL}
	return service.NewAvailableService(client, printer).Run(ctx)
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "gdvm",
		Short:   "List the latest stable Godot releases for each major version",
		Args:    cobra.NoArgs,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), cmd.OutOrStdout(), config.EnvFile)
		},
		SilenceUsage: true,
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
