/*
Package main implements the levtrie fuzzy autocomplete server and CLI [DBG] application.

levtrie loads a word list into a prefix tree and completes input one symbol at a time,
returning every word whose prefix is within an edit-distance bound of what was typed so far.
It runs as a msgpack IPC server over stdin/stdout, or as a CLI for watching the matcher work.

# Usage

Start the server with the defaults from levtrie.toml:

	levtrie -dict words.txt

Run in CLI mode with a wider bound, sorted by priority:

	levtrie -c -dict words.txt -k 2 -sort priority

Look up whole words within two edits instead of completing prefixes:

	levtrie -c -s -dict words.txt -k 2

# Configuration

The config file is created with defaults if it doesn't exist:

	[matcher]
	max_cost = 1
	sort = "distance"
	limit = 0

	[dict]
	path = "words.txt"

	[server]
	max_input = 64

Flags override the file.

# Command Line Flags

	-config string
	    Path to the TOML config (default "levtrie.toml")
	-dict string
	    Word list, overrides dict.path
	-k int
	    Max edit cost, overrides matcher.max_cost
	-sort string
	    "distance" or "priority", overrides matcher.sort
	-limit int
	    Number of matches to show, overrides matcher.limit
	-c  Run CLI mode instead of server mode
	-s  In CLI mode, search whole words instead of stepping through each line
	-d  Enable debug mode with detailed logging
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/levtrie/internal/cli"
	"github.com/bastiangx/levtrie/internal/logger"
	"github.com/bastiangx/levtrie/pkg/config"
	"github.com/bastiangx/levtrie/pkg/dictionary"
	"github.com/bastiangx/levtrie/pkg/server"
	"github.com/bastiangx/levtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "levtrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow between config, dictionary, and the selected mode.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "levtrie.toml", "Path to the TOML config")
	dictPath := flag.String("dict", "", "Word list, overrides dict.path")
	maxCost := flag.Int("k", -1, "Max edit cost, overrides matcher.max_cost")
	sortName := flag.String("sort", "", "Sort key (distance|priority), overrides matcher.sort")
	limit := flag.Int("limit", -1, "Number of matches to show, overrides matcher.limit")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	searchMode := flag.Bool("s", false, "Whole-word search per line in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *maxCost >= 0 {
		cfg.Matcher.MaxCost = *maxCost
	}
	if *sortName != "" {
		cfg.Matcher.Sort = *sortName
	}
	if *limit >= 0 {
		cfg.Matcher.Limit = *limit
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	key, _ := cfg.SortKey()

	log.Debugf("Using word list: %s", cfg.Dict.Path)
	words, err := dictionary.LoadFile(cfg.Dict.Path)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	tree, err := words.Build()
	if err != nil {
		log.Fatalf("Failed to build trie: %v", err)
	}
	session := suggest.NewMatcher(tree)
	log.Debug("Matcher init done", "words", words.Len(), "maxCost", cfg.Matcher.MaxCost, "sort", key)

	if *cliMode {
		handler := cli.NewInputHandler(session, cfg.Matcher.MaxCost, key, cfg.Matcher.Limit, cfg.Server.MaxInput, logger.New(""))
		handler.SearchMode(*searchMode)
		if err := handler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(session, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Printf("[ %s ] incremental fuzzy completions", AppName)
	l.Print("", "version", Version)
	l.Print("use -h or --help to see available options")
}
