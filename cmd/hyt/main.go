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

	"github.com/spf13/cobra"

	"github.com/dshills/hylite/internal/hylite"
	"github.com/dshills/hylite/internal/report"
	"github.com/dshills/hylite/internal/scanner"
	"github.com/dshills/hylite/internal/workset"
	"github.com/dshills/hylite/pkg/types"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// options holds the parsed command-line flags
type options struct {
	dir     bool
	setFile string
	covert  bool
	name    string
	groups  []string
	attrs   []string
	listing report.Options
	listWS  bool
	countHy bool
	verbose bool
}

func main() {
	// an interrupt aborts a scan, or shuts the MCP server down
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "hyt: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hyt [flags] [file ...]",
		Short: "List hylite annotations found in source comments",
		Long: `hyt scans source files for hylites, annotations written in comments:

    // hylite cache-evict: perf todo: revisit the LRU size

Files come from the command line, from a working-set file (--set), or from
$HYLITE_SET / ./.hylite when neither is given.`,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("hyt {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.dir, "dir", "d", false, "list a directory of all attributes")
	flags.StringVarP(&opts.setFile, "set", "s", "", "use the given working-set file")
	flags.BoolVarP(&opts.covert, "covert", "c", false, "also examine covert (hidden and backup) files")
	flags.StringVarP(&opts.name, "name", "n", "", "show only the given name (/re/ for a regular expression)")
	flags.StringArrayVarP(&opts.groups, "group", "g", nil, "show only names starting with this prefix (repeatable)")
	flags.StringArrayVarP(&opts.attrs, "fattr", "A", nil, "show only hylites with this attribute (repeatable)")
	flags.BoolVarP(&opts.listing.Attributes, "attrib", "a", false, "list attributes")
	flags.BoolVarP(&opts.listing.Locations, "location", "l", false, "list locations")
	flags.BoolVarP(&opts.listing.Text, "text", "t", false, "list text comments")
	flags.BoolVar(&opts.listWS, "d_lws", false, "debug: list the working set")
	flags.BoolVar(&opts.countHy, "d_hyc", false, "debug: count hylites")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log debug details to stderr")

	cmd.AddCommand(newServeCmd(opts))
	return cmd
}

// newLogger writes to stderr; stdout is reserved for listings and the MCP protocol
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	out := cmd.OutOrStdout()

	ws, err := selectWorkingSet(opts, args, logger)
	if err != nil {
		return err
	}
	if ws == nil {
		logger.Info("nothing to scan: no files given and no readable working-set file", "path", workset.DefaultPath())
		return nil
	}
	ws.SetCovert(opts.covert)

	files, err := ws.Files()
	if err != nil {
		return err
	}

	if opts.listWS {
		return report.Files(out, files)
	}

	set := hylite.NewSet()
	stats, err := scanner.New(set, logger).ScanFiles(cmd.Context(), files)
	if err != nil {
		return err
	}
	logger.Debug("scan complete",
		"files", stats.FilesScanned,
		"skipped", stats.FilesSkipped,
		"hylites", stats.Hylites,
		"duration", stats.Duration)

	switch {
	case opts.countHy:
		return report.Count(out, set)
	case opts.dir:
		return report.Directory(out, set)
	}

	query := report.Query{Name: opts.name, Groups: opts.groups, Attributes: opts.attrs}
	src, err := query.Apply(set)
	if err != nil {
		return err
	}
	return report.Listing(out, src, opts.listing)
}

// selectWorkingSet picks --set, then the files on the command line, then the
// default set file. It returns nil when the default set file is not readable.
func selectWorkingSet(opts *options, args []string, logger *slog.Logger) (workset.WorkingSet, error) {
	if opts.setFile != "" {
		ws, err := workset.Load(opts.setFile)
		if err != nil {
			return nil, err
		}
		return ws, nil
	}
	if len(args) > 0 {
		return workset.NewManual(logger, args...), nil
	}

	ws, err := workset.Load(workset.DefaultPath())
	if err != nil {
		var fe *types.FileError
		if errors.As(err, &fe) {
			return nil, nil
		}
		return nil, err
	}
	return ws, nil
}
