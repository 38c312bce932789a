// Smart House - device registry console
//
// This is the entry point for the smart house console. It seeds a house and
// its device registry from configuration, prints a status report, then reads
// commands from stdin while a reporter prints the status periodically.
//
// Commands are "<device name> <code>", e.g. "socket1 11" to turn a socket on.
// An empty line or "exit" quits.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/nerrad567/smart-house-core/internal/infrastructure/config"
	"github.com/nerrad567/smart-house-core/internal/infrastructure/logging"
	"github.com/nerrad567/smart-house-core/internal/report"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line flags.
type options struct {
	configPath string
	reportOnce bool
}

// parseFlags parses command-line arguments.
func parseFlags(args []string) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("smarthome", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configPath, "config", "c", getConfigPath(), "path to the YAML configuration file")
	flagSet.BoolVar(&opts.reportOnce, "report-once", false, "print one status report and exit")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - args: Command-line arguments without the program name
//   - in: Source of operator commands
//   - out: Destination for reports and command results
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	log := logging.Default()

	opts, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("starting smart house",
		"site", cfg.Site.Name,
		"version", version,
		"commit", commit,
		"build_date", date,
		"config", opts.configPath,
	)

	h, registry, err := seed(cfg, log)
	if err != nil {
		return fmt.Errorf("seeding house: %w", err)
	}
	log.Info("house seeded",
		"rooms", len(h.RoomNames()),
		"devices", registry.DeviceCount(),
	)

	con := newConsole(out)
	con.Print(report.Generate(h, registry))
	if opts.reportOnce {
		return nil
	}

	if err := serve(ctx, cfg.Report.Interval, h, registry, in, con, log); err != nil {
		return err
	}

	log.Info("smart house stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SMARTHOME_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SMARTHOME_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
