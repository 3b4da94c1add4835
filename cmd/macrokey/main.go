// Package main is the entry point for the macrokey loader tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/dshills/macrokey/internal/config"
	"github.com/dshills/macrokey/internal/diag"
	"github.com/dshills/macrokey/internal/macro"
	"github.com/dshills/macrokey/internal/session"
	"github.com/dshills/macrokey/internal/watcher"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	snapshot   string
	conflicts  bool
	watch      bool
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.snapshot != "" {
		cfg.SnapshotPath = opts.snapshot
	}
	if opts.watch {
		cfg.Watch = true
	}

	files := opts.files
	if len(files) == 0 && cfg.MacroDir != "" {
		files, err = filepath.Glob(filepath.Join(cfg.MacroDir, "*.csv"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: scanning %s: %v\n", cfg.MacroDir, err)
			return 1
		}
		sort.Strings(files)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no macro files to load")
		flag.Usage()
		return 1
	}

	sess := session.New(session.WithDiagnosticLimit(cfg.MaxDiagnostics))

	failed := 0
	for _, path := range files {
		ok := sess.Load(path)
		printDiagnostics(path, sess.LastDiagnostics())
		if !ok {
			failed++
			continue
		}
		sets := sess.Sets()
		printSet(sets[len(sets)-1])
	}

	if opts.conflicts {
		printConflicts(sess.Conflicts())
	}

	if cfg.SnapshotPath != "" {
		if err := macro.SaveSnapshot(sess.Sets(), cfg.SnapshotPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Snapshot written to %s\n", cfg.SnapshotPath)
	}

	if cfg.Watch {
		if err := runWatch(sess, files); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// runWatch blocks, reloading files as they change, until interrupted.
func runWatch(sess *session.Session, files []string) error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range files {
		if err := w.Watch(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Watching for changes (Ctrl-C to stop)...")
	for {
		select {
		case <-signals:
			return nil
		case ev := <-w.Events():
			fmt.Printf("\n%s changed, reloading\n", ev.Path)
			ok := sess.Load(ev.Path)
			printDiagnostics(ev.Path, sess.LastDiagnostics())
			if ok {
				sets := sess.Sets()
				printSet(sets[len(sets)-1])
			}
		}
	}
}

// printDiagnostics reports a load's diagnostics to stderr.
func printDiagnostics(path string, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, d)
	}
}

// printSet lists a set's macros in numbered "Key -> Text" lines.
func printSet(set macro.Set) {
	fmt.Printf("\nLoaded %d macros from: %s\n", set.Len(), set.Source)
	fmt.Println("--------------------------------------------------")
	for i, e := range set.Entries {
		fmt.Printf("%d. Key: '%s' -> Text: '%s'\n", i+1, e.Combination(), e.Action)
	}
}

// printConflicts reports combinations bound in more than one place.
func printConflicts(conflicts []session.Conflict) {
	if len(conflicts) == 0 {
		fmt.Println("\nNo key conflicts.")
		return
	}

	fmt.Printf("\n%d key conflict(s):\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Printf("  %s\n", c.Combination)
		for _, site := range c.Sites {
			fmt.Printf("    %s entry %d: %s\n", site.Source, site.Index+1, site.Action)
		}
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write a session snapshot to this path after loading")
	flag.BoolVar(&opts.conflicts, "conflicts", false, "Report key combinations bound in more than one place")
	flag.BoolVar(&opts.watch, "watch", false, "Keep running and reload files when they change")
	flag.BoolVar(&opts.watch, "w", false, "Keep running and reload files when they change (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Macrokey - keyboard macro definition loader\n\n")
		fmt.Fprintf(os.Stderr, "Usage: macrokey [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  macrokey macros.csv              Load and list one file\n")
		fmt.Fprintf(os.Stderr, "  macrokey -conflicts a.csv b.csv  Load two files, report conflicts\n")
		fmt.Fprintf(os.Stderr, "  macrokey -w macros.csv           Reload on change\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Macrokey %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
