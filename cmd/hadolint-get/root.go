package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/IngoMeyer441/hadolint-get/internal/cache"
	"github.com/IngoMeyer441/hadolint-get/internal/config"
	"github.com/IngoMeyer441/hadolint-get/internal/dispatch"
	"github.com/IngoMeyer441/hadolint-get/internal/fetch"
	"github.com/IngoMeyer441/hadolint-get/internal/logging"
	"github.com/IngoMeyer441/hadolint-get/internal/messages"
	"github.com/IngoMeyer441/hadolint-get/internal/terminal"
	"github.com/IngoMeyer441/hadolint-get/internal/version"
)

var (
	execFunc   = dispatch.Exec
	loadConfig = config.Load
	envFromOS  = cache.EnvFromOS
	isTerminal = terminal.IsTerminal
	getenv     = os.Getenv
	goos       = ""
)

var newResolver = func(upstreamURL string) fetch.VersionResolver {
	return version.NewResolver(upstreamURL)
}

type rootOptions struct {
	hadolintVersion  string
	printToolVersion bool
	clean            bool
	offline          bool
	printPath        bool
}

func newRootCmd(program string, forwarded []string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf(messages.UnexpectedArgsFmt, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.printToolVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), messages.ToolVersionFmt, program, versionString())
				return err
			}
			return run(cmd.Context(), opts, forwarded, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.hadolintVersion, "hadolint-version", "V", "", messages.FlagHadolintVersion)
	flags.BoolVar(&opts.printToolVersion, "print-tool-version", false, messages.FlagPrintToolVersion)
	flags.BoolVar(&opts.clean, "clean", false, messages.FlagClean)
	flags.BoolVar(&opts.offline, "offline", false, messages.FlagOffline)
	flags.BoolVar(&opts.printPath, "print-path", false, messages.FlagPrintPath)
	return cmd
}

// run fetches the requested hadolint and either prints its path or hands over to it.
func run(ctx context.Context, opts rootOptions, forwarded []string, stdout io.Writer, stderr io.Writer) error {
	cwd, err := getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cwd, getenv)
	if err != nil {
		return err
	}
	logging.Init(stderr, cfg.LogLevel)
	ctx = logging.WithComponent(ctx, "cli")
	if cfg.Source != "" {
		logging.Debug(ctx, "loaded config", "path", cfg.Source)
	}

	requested := cfg.Version
	if opts.hadolintVersion != "" {
		requested = opts.hadolintVersion
	}

	offline := cfg.Offline || opts.offline
	if offline && opts.clean {
		logging.Warn(ctx, "cleaning the cache in offline mode leaves nothing to run")
	}

	env := envFromOS()
	env.Override = cfg.CacheDir
	fetcher := &fetch.Fetcher{
		Resolver:       newResolver(cfg.UpstreamURL),
		GOOS:           goos,
		Env:            env,
		ReleaseBaseURL: cfg.ReleaseURL,
		Offline:        offline,
		Clean:          opts.clean,
	}
	if isTerminal(stderr) {
		fetcher.Progress = stderr
	}

	path, err := fetcher.Fetch(ctx, requested)
	if err != nil {
		return err
	}
	if opts.printPath {
		_, err := fmt.Fprintln(stdout, path)
		return err
	}
	return execFunc(ctx, dispatch.RealSystem{}, path, forwarded)
}
