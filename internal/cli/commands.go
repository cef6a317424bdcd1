// Package cli implements the streamcat command line, a thin front end that
// drives local files and the standard streams through fileobj.File.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/streamio/backend/osfile"
	"github.com/jmgilman/go/streamio/core"
	streamerrors "github.com/jmgilman/go/streamio/errors"
	"github.com/jmgilman/go/streamio/fileobj"
)

// stdioName is the file argument that selects standard input or output.
const stdioName = "-"

// app carries the state shared by every subcommand.
type app struct {
	configFile string
	logLevel   string
	chunkSize  int

	logger *slog.Logger
	opts   []fileobj.Option

	// stdin returns a fresh stream over standard input. Each "-" argument
	// gets its own stream so closing one does not affect the next.
	stdin  func() core.InputStream
	stdout core.OutputStream
	stderr io.Writer
}

func newApp() *app {
	return &app{
		logLevel: "warn",
		stdin:    func() core.InputStream { return osfile.Stdin() },
		stdout:   osfile.Stdout(),
		stderr:   os.Stderr,
	}
}

// NewRootCmd returns the streamcat root command wired to the process
// standard streams.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "streamcat [command] [flags]",
		Short: "streamcat - read, inspect and copy streams through a file object",
		Long: `streamcat reads, inspects and copies local files and the standard
streams through the streamio file-object adapter.

Examples:
  # Print a file
  streamcat cat notes.txt

  # Print the first 5 lines of standard input
  streamcat head -n 5 -

  # Show what a stream supports
  streamcat info notes.txt

  # Copy a file, appending to the destination
  streamcat copy --append src.log dst.log`,
		PersistentPreRunE: a.preRun,
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", a.logLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&a.chunkSize, "chunk-size", 0, "Read chunk and write staging size in bytes")

	rootCmd.AddCommand(newCatCmd(a))
	rootCmd.AddCommand(newHeadCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newCopyCmd(a))

	return rootCmd
}

// exitTempFail is the sysexits.h status for a failure worth retrying.
const exitTempFail = 75

// Execute runs the root command and exits with a non-zero status on failure.
// This is called by main.main().
func Execute() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps retryable transport failures to exitTempFail and everything
// else to 1.
func exitCode(err error) int {
	if streamerrors.IsRetryable(err) {
		return exitTempFail
	}
	return 1
}

// preRun merges the configuration file with the flags and builds the logger.
// Flags set on the command line win over the file.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if a.configFile != "" {
		c, err := LoadConfig(a.configFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if c.LogLevel != "" && !flags.Changed("log-level") {
			a.logLevel = c.LogLevel
		}
		if c.ChunkSize > 0 && !flags.Changed("chunk-size") {
			a.chunkSize = c.ChunkSize
		}
	}
	if a.chunkSize < 0 {
		return fmt.Errorf("--chunk-size must not be negative, got %d", a.chunkSize)
	}

	lvl, err := parseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))

	a.opts = []fileobj.Option{fileobj.WithLogger(a.logger)}
	if a.chunkSize > 0 {
		a.opts = append(a.opts, fileobj.WithChunkSize(a.chunkSize))
	}
	return nil
}

// openInput wraps name, or standard input for "-", in a File.
func (a *app) openInput(name string) (*fileobj.File, error) {
	if name == stdioName {
		return fileobj.New(a.stdin(), a.with("stdin")...)
	}
	return a.openMode(name, "r")
}

// openOutput wraps name, or standard output for "-", in a File. The file is
// truncated unless appending.
func (a *app) openOutput(name string, appending bool) (*fileobj.File, error) {
	if name == stdioName {
		return a.openStdout()
	}
	mode := "w"
	if appending {
		mode = "a"
	}
	return a.openMode(name, mode)
}

// openMode opens name with a file-object mode string and wraps it in a File.
func (a *app) openMode(name, mode string) (*fileobj.File, error) {
	s, err := osfile.OpenMode(name, mode)
	if err != nil {
		return nil, err
	}
	f, err := fileobj.New(s, a.with(name)...)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return f, nil
}

func (a *app) openStdout() (*fileobj.File, error) {
	return fileobj.New(a.stdout, a.with("stdout")...)
}

func (a *app) with(name string) []fileobj.Option {
	return append([]fileobj.Option{fileobj.WithName(name)}, a.opts...)
}

// inputs returns args, or standard input when none are given.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{stdioName}
	}
	return args
}
