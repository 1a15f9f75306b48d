package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/xtal-tools/xtalsum/internal/codec"
	"github.com/xtal-tools/xtalsum/internal/logging"
	"github.com/xtal-tools/xtalsum/internal/ptable"
	"github.com/xtal-tools/xtalsum/internal/server"
	"github.com/xtal-tools/xtalsum/internal/summary"
	"github.com/xtal-tools/xtalsum/internal/view"
)

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "xtalsum structure.json -site 0". We reorder args so flags
	// come first, then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("xtalsum", flag.ExitOnError)
	pathFlag := fs.String("path", "", "path to a condensed-structure document (alternative to positional argument)")
	siteFlag := fs.Int("site", -1, "print the nearest-neighbor details of one site index")
	componentFlag := fs.Int("component", -1, "print the site groups of one component index")
	groupByElement := fs.Bool("group-by-element", false, "merge nearest-neighbor groups of the same element")
	orderingFlag := fs.String("ordering", "iupac", "element ordering (iupac, electronegativity)")
	serve := fs.Bool("serve", false, "run the describe HTTP server instead of reading a document")
	port := fs.Int("port", 8080, "HTTP server port")
	output := fs.String("output", "", "write the summary to a file instead of stdout")
	logFile := fs.String("log-file", "logs/xtalsum.log", "log file path")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	// Determine input: positional argument takes precedence, then -path flag
	input := ""
	if len(positional) > 0 {
		input = positional[0]
	}
	if input == "" {
		input = *pathFlag
	}
	if input == "" && !*serve {
		fmt.Fprintln(os.Stderr, "Usage: xtalsum [flags] <condensed-structure.json|yaml>")
		fs.PrintDefaults()
		os.Exit(1)
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ordering, err := parseOrdering(*orderingFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Setup signal handling with context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if *serve {
		fmt.Printf("Starting server on http://localhost:%d\n", *port)
		if err := server.New(ptable.New(), logger).Serve(ctx, *port); err != nil {
			logger.Error("server error", "error", err)
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Step 1: Decode and validate the condensed-structure document.
	structure, err := codec.DecodeFile(input)
	if err != nil {
		logger.Error("failed to load document", "path", input, "error", err)
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}
	logger.Info("document loaded", "path", input,
		"sites", len(structure.Sites), "components", len(structure.Components))

	// Step 2: Build the view.
	adapter, err := view.New(structure, ptable.New(), ordering)
	if err != nil {
		logger.Error("failed to build view", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Step 3: Answer the query (one site, one component, or the full summary).
	var payload any
	switch {
	case *siteFlag >= 0:
		payload, err = adapter.NearestNeighborDetails(*siteFlag, *groupByElement)
	case *componentFlag >= 0:
		payload, err = adapter.ComponentSiteGroups(*componentFlag)
	default:
		payload, err = summary.Build(adapter, summary.Options{GroupByElement: *groupByElement})
	}
	if err != nil {
		logger.Error("query failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.Error("failed to render output", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, append(rendered, '\n'), 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote summary to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the positional path argument).
// Flags that take a value (e.g., -site 0) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-path": true, "-site": true, "-component": true, "-ordering": true,
		"-port": true, "-output": true, "-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func parseOrdering(s string) (view.Ordering, error) {
	switch strings.ToLower(s) {
	case "iupac":
		return view.IUPACOrdering, nil
	case "electronegativity", "x":
		return view.ElectronegativityOrdering, nil
	default:
		return view.IUPACOrdering, fmt.Errorf("unknown ordering: %s (valid: iupac, electronegativity)", s)
	}
}
