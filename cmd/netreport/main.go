// Netreport prints a one-shot snapshot of the host's active network
// interfaces and outbound internet reachability.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fzdarsky/netreport/internal/config"
	"github.com/fzdarsky/netreport/internal/hostinfo"
	"github.com/fzdarsky/netreport/internal/logging"
	"github.com/fzdarsky/netreport/internal/netinfo"
	"github.com/fzdarsky/netreport/internal/probe"
	"github.com/fzdarsky/netreport/internal/report"
)

var (
	// version is set by build flags
	version = "dev"
)

func main() {
	configPath := flag.String("config", "", "path to optional configuration file")
	jsonOut := flag.Bool("json", false, "render the report as a JSON document")
	timeoutOverride := flag.Duration("timeout", 0, "override the probe timeout")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("netreport", version)
		return
	}

	logger := logging.New(logging.LevelInfo, logging.FormatHuman)

	if err := run(*configPath, *jsonOut, *timeoutOverride, logger); err != nil {
		logger.Error("netreport failed", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

// run builds the report pipeline from configuration and produces one
// snapshot on stdout. It only fails on a broken configuration; abnormal
// network state renders as report data, never as a process failure.
func run(configPath string, jsonOut bool, timeoutOverride time.Duration, logger *logging.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	// Recreate logger with config settings
	logger = logging.New(parseLogLevel(cfg.Logging.Level), parseLogFormat(cfg.Logging.Format))

	probeTimeout, err := cfg.GetProbeTimeout()
	if err != nil {
		return err
	}
	if timeoutOverride > 0 {
		probeTimeout = timeoutOverride
	}

	deadline, err := cfg.GetReportDeadline()
	if err != nil {
		return err
	}

	logger.Debug("starting report", map[string]any{
		"probe_target":  cfg.Probe.Target,
		"probe_port":    cfg.Probe.Port,
		"probe_timeout": probeTimeout.String(),
		"deadline":      deadline.String(),
	})

	prober := probe.New(cfg.Probe.Target, cfg.Probe.Port, probeTimeout)
	enumerator := netinfo.New()

	runner := &report.Runner{
		Enumerate: enumerator.Enumerate,
		Probe:     prober.Probe,
		Host:      hostinfo.Collect,
		Deadline:  deadline,
		Logger:    logger,
		JSON:      jsonOut,
	}
	runner.Run(context.Background(), os.Stdout)

	return nil
}

func parseLogLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(format string) logging.LogFormat {
	switch format {
	case "json":
		return logging.FormatJSON
	case "human":
		return logging.FormatHuman
	default:
		return logging.FormatHuman
	}
}
