package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/golovatskygroup/repsona-mcp/internal/config"
	"github.com/golovatskygroup/repsona-mcp/internal/httplog"
	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
	"github.com/golovatskygroup/repsona-mcp/internal/server"
	"github.com/golovatskygroup/repsona-mcp/internal/tools"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = server.DefaultVersion

type options struct {
	configPath   string
	envFile      string
	logLevel     string
	logFormat    string
	validateArgs bool
	check        bool
	showVersion  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("repsona-mcp", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to yaml config file")
	fs.StringVar(&opts.envFile, "env-file", ".env", "Path to .env file; a missing file is ignored")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	fs.BoolVar(&opts.validateArgs, "validate-args", false, "Validate tool arguments against their schemas")
	fs.BoolVar(&opts.check, "check", false, "Read every resource once, print a summary and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "repsona-mcp %s\n", version)
		return 0
	}

	if _, err := config.LoadDotEnv(opts.envFile); err != nil {
		fmt.Fprintf(stderr, "Error loading env file: %v\n", err)
		return 1
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if fs.Changed("validate-args") {
		cfg.Tools.ValidateArgs = opts.validateArgs
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := cfg.Log.NewLogger(stderr)
	slog.SetDefault(logger)

	gw, err := newGateway(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.check {
		if err := runCheck(ctx, gw, stdout); err != nil {
			logger.Error("check failed", "error", err)
			return 1
		}
		return 0
	}

	srv := server.New(gw, server.Options{Version: version, Logger: logger})
	if err := srv.Run(ctx, stdin, stdout); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	return 0
}

func newGateway(cfg config.Config, logger *slog.Logger) (*tools.Gateway, error) {
	hc := httplog.NewClient(httplog.Config{
		Logger:    logger,
		UserAgent: cfg.Repsona.UserAgent,
	}, cfg.Repsona.HTTPTimeout)

	client, err := repsona.New(repsona.Config{
		BaseURL:    cfg.BaseURL(),
		APIKey:     cfg.Repsona.APIKey,
		UserAgent:  cfg.Repsona.UserAgent,
		HTTPClient: hc,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("repsona client ready", "base_url", client.BaseURL())

	return tools.NewGateway(client,
		tools.WithLogger(logger),
		tools.WithArgValidation(cfg.Tools.ValidateArgs),
	)
}
