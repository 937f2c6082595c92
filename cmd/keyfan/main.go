// Copyright 2026 The keyfan Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the keyfan keyword expansion server and CLI application.

keyfan grows a handful of seed keywords into long-tail keyword ideas by
querying a public autocomplete endpoint with systematically generated
variants (question prefixes, preposition combinations, comparison phrases),
then deduplicates the results into three buckets: Questions, Prepositions
and Comparisons. It can operate as a msgpack IPC server for integration with
other tools, or as a CLI application for one-shot runs and interactive use.

# Usage

One-shot expansion with CSV export:

	keyfan -seeds "electric cars,green hydrogen" -region IN -o ideas.csv

Interactive mode for exploring a single seed at a time:

	keyfan -c -region US

Start the IPC server (default when no seeds are given):

	keyfan

Enable debug logging in any mode with -d.

# Expansion

Each seed produces a fixed set of query variants: ten question-word prefixes,
ten prepositions tried in both orders and seven comparison terms tried in
both orders. Variants are fetched concurrently with a bounded worker count,
but results are reassembled in vocabulary order before deduplication, so the
output is identical to a sequential run. A failed fetch contributes nothing
to its bucket; the run itself never fails because of the upstream.

# Configuration

Runtime configuration is managed through a TOML file covering the upstream
endpoint, request timeout, worker count and CLI defaults:

	[http]
	endpoint = "https://suggestqueries.google.com/complete/search"
	timeout_ms = 4000

	[expand]
	workers = 8
	default_region = "IN"
	cache_entries = 512

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Expansion
requests carry an ID, seeds and a region code; responses hold per-seed
buckets with timing information. See the server package docs for the message
shapes.

# Command Line Flags

The following flags control application behavior:

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run interactive CLI mode
	-seeds string
	    Comma-separated seed keywords (1-5) for a one-shot run
	-region string
	    Two-letter region code for geo targeting (default from config)
	-o string
	    CSV output path for one-shot runs (default "keyword_suggestions.csv")
	-config string
	    Custom config file path
	-workers int
	    Concurrent suggest queries per seed
	-limit int
	    Per-bucket display limit in CLI mode
	-no-cache
	    Disable the per-run suggestion cache
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/seokit/keyfan/internal/cli"
	"github.com/seokit/keyfan/internal/utils"
	"github.com/seokit/keyfan/pkg/config"
	"github.com/seokit/keyfan/pkg/expand"
	"github.com/seokit/keyfan/pkg/export"
	"github.com/seokit/keyfan/pkg/server"
	"github.com/seokit/keyfan/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "keyfan"
	gh      = "https://github.com/seokit/keyfan"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI mode")
	seedsFlag := flag.String("seeds", "", "Comma-separated seed keywords (1-5) for a one-shot run")
	regionFlag := flag.String("region", "", "Two-letter region code for geo targeting")
	outPath := flag.String("o", "keyword_suggestions.csv", "CSV output path for one-shot runs")
	configPath := flag.String("config", "", "Custom config file path")
	workers := flag.Int("workers", defaultConfig.Expand.Workers, "Concurrent suggest queries per seed")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Per-bucket display limit in CLI mode")
	noCache := flag.Bool("no-cache", false, "Disable the per-run suggestion cache")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := loadConfig(*configPath)
	if *workers > 0 {
		cfg.Expand.Workers = *workers
	}

	region := cfg.Expand.DefaultRegion
	if *regionFlag != "" {
		region = strings.ToUpper(strings.TrimSpace(*regionFlag))
	}
	if !suggest.ValidRegion(region) {
		log.Fatalf("Unsupported region code %q (supported: %s)", region, strings.Join(suggest.Regions(), ", "))
	}

	var fetcher suggest.Fetcher = suggest.NewClient(
		suggest.WithEndpoint(cfg.HTTP.Endpoint),
		suggest.WithTimeout(cfg.HTTP.Timeout()),
	)
	if !*noCache {
		fetcher = suggest.NewCachedFetcher(fetcher, cfg.Expand.CacheEntries)
	}
	expander := expand.NewExpander(fetcher, cfg.Expand.Workers)

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(expander, region, *limit, cfg.CLI.ShowTiming)
		if err := inputHandler.Start(ctx); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *seedsFlag != "" || flag.NArg() > 0 {
		seeds := gatherSeeds(*seedsFlag, flag.Args())
		runOnce(ctx, expander, seeds, region, *outPath)
		return
	}

	runServer(ctx, expander)
}

// loadConfig resolves the config path and loads or creates the TOML config.
func loadConfig(customPath string) *config.Config {
	path := customPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Warnf("Failed to get home directory: %v. Using built-in defaults...", err)
			return config.DefaultConfig()
		}
		path = filepath.Join(homeDir, ".config", AppName, "config.toml")
	}

	cfg, err := config.InitConfig(path)
	if err != nil {
		log.Warnf("Failed to load config: %v. Using built-in defaults...", err)
		return config.DefaultConfig()
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(path))
	return cfg
}

// gatherSeeds merges the -seeds flag and positional args into one seed list.
func gatherSeeds(seedsFlag string, args []string) []string {
	var seeds []string
	for _, s := range strings.Split(seedsFlag, ",") {
		seeds = append(seeds, s)
	}
	seeds = append(seeds, args...)
	return seeds
}

// runOnce expands the seeds and writes the result as CSV.
func runOnce(ctx context.Context, expander *expand.Expander, seeds []string, region, outPath string) {
	result, err := expander.Run(ctx, seeds, region)
	if err != nil {
		log.Fatalf("Expansion failed: %v", err)
	}

	if outPath == "-" {
		if err := export.WriteCSV(os.Stdout, result); err != nil {
			log.Fatalf("Writing CSV: %v", err)
		}
		return
	}
	if err := export.SaveCSV(outPath, result); err != nil {
		log.Fatalf("Writing CSV to %s: %v", outPath, err)
	}

	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	log.Infof("Generated %d unique suggestions for %d seed(s)", result.Len(), len(result.Seeds))
	log.Infof("Saved to (%s)", outPath)
	log.SetLevel(currentLevel)
}

// runServer starts the msgpack IPC server on stdin/stdout.
func runServer(ctx context.Context, expander *expand.Expander) {
	srv := server.NewServer(expander)

	showStartupInfo()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ keyfan ] Fans seed keywords out into long-tail ideas!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println("  keyfan  ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
