package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/colinlord/ironman-results/internal/event"
	"github.com/colinlord/ironman-results/internal/results"
	"github.com/colinlord/ironman-results/internal/scraper"
	"github.com/colinlord/ironman-results/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL       string
	flagName      string
	flagOutputDir string
	flagAPIBase   string
	flagVerbose   bool
)

// ErrBadURL reports a race page URL without an http or https scheme.
var ErrBadURL = errors.New("race page URL must start with http:// or https://")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ironman-results",
		Short: "Download historical IRONMAN race results as CSV files",
		Long: `A CLI tool to download athlete results for every year of an IRONMAN
race series. Point it at a race page URL and it writes one CSV file per year.`,
		RunE: runDownload,
	}

	// Define flags
	cmd.Flags().StringVar(&flagURL, "url", "", "Race page URL (prompted for when omitted)")
	cmd.Flags().StringVar(&flagName, "name", "", "Base name for output files (prompted for when omitted)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", ".", "Directory for output CSV files")
	cmd.Flags().StringVar(&flagAPIBase, "api-base", envOr("IRONMAN_RESULTS_API_BASE", results.DefaultAPIBase), "Results API base URL")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runDownload(cmd *cobra.Command, args []string) error {
	return run(NewConsole(os.Stdin, os.Stdout))
}

// run is the main command logic, driving the full pipeline: load the race
// page, enumerate its years, then fetch and write each year's results.
func run(console *Console) error {
	rawURL := flagURL
	if rawURL == "" {
		var err error
		rawURL, err = console.Ask("Race page URL: ")
		if err != nil {
			return err
		}
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("%w: %q", ErrBadURL, rawURL)
	}

	name := flagName
	if name == "" {
		var err error
		name, err = console.Ask("Base name for output files: ")
		if err != nil {
			return err
		}
	}
	baseName := NormalizeBaseName(name)
	if baseName == "" {
		return fmt.Errorf("base name %q has no usable characters", name)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Race page: %s\n", rawURL)
		fmt.Fprintf(os.Stderr, "Base name: %s\n", baseName)
		fmt.Fprintf(os.Stderr, "Output directory: %s\n", flagOutputDir)
	}

	// Initialize storage
	store, err := storage.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	// Fetch the race page and its embedded data
	console.Printf("Fetching race page...\n")
	sc := scraper.New()
	pageDoc, err := sc.LoadPage(rawURL)
	if err != nil {
		return fmt.Errorf("loading race page: %w", err)
	}

	// Enumerate race years
	subs, skips, err := event.Enumerate(pageDoc)
	if err != nil {
		return fmt.Errorf("enumerating race years: %w", err)
	}
	for _, skip := range skips {
		console.Printf("Warning: %s\n", skip.Reason)
	}
	console.Printf("Found %d race years\n", len(subs))

	// Fetch and write each year independently; one bad year never blocks
	// the rest of the run.
	client := results.NewClient(flagAPIBase)
	var written, empty, failed int
	for _, sub := range subs {
		records, err := client.Fetch(sub)
		if err != nil {
			failed++
			console.Printf("Error fetching %s (%s): %v\n", sub.Year, sub.ID, err)
			continue
		}

		if len(records) == 0 {
			empty++
			console.Printf("No results for %s, skipping\n", sub.Year)
			continue
		}

		doc := results.EncodeCSV(results.Normalize(records))
		path, err := store.WriteYear(baseName, sub.Year, doc)
		if err != nil {
			failed++
			console.Printf("Error writing %s (%s): %v\n", sub.Year, sub.ID, err)
			continue
		}

		written++
		console.Printf("Wrote %d results to %s\n", len(records), path)
	}

	console.Printf("Done: %d written, %d empty, %d failed\n", written, empty, failed)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
