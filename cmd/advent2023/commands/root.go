// Package commands implements the advent2023 command line.
package commands

import (
	"context"
	"io"
	"os"

	aoc "github.com/maisem/advent2023"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for advent2023.
type CLI struct {
	reg     *aoc.Registry
	rootCmd *cobra.Command
	stderr  io.Writer
	log     zerolog.Logger

	configPath   string
	inputDir     string
	year         int
	part         string
	sample       bool
	checkSamples bool
	debug        bool
}

// New creates a CLI that runs the days registered in reg.
func New(reg *aoc.Registry) *CLI {
	c := &CLI{
		reg:    reg,
		stderr: os.Stderr,
		log:    aoc.NewLogger(os.Stderr, false),
	}

	rootCmd := &cobra.Command{
		Use:   "advent2023 <day|all>",
		Short: "Run Advent of Code 2023 solutions",
		Long: "Run the solution for a day (1-25) against its puzzle input and print both answers with timings.\n" +
			"Inputs are read from <input-dir>/<year>/<day>.input and downloaded when a session is configured.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.log = aoc.NewLogger(c.stderr, c.debug)
		},
		RunE: c.runE,
	}

	f := rootCmd.PersistentFlags()
	f.StringVarP(&c.configPath, "config", "c", "advent2023.json", "Path to configuration file")
	f.BoolVar(&c.debug, "debug", false, "Enable debug logging")

	rf := rootCmd.Flags()
	rf.StringVar(&c.inputDir, "input-dir", "", "Directory holding <year>/<day>.input files (overrides config)")
	rf.IntVar(&c.year, "year", 0, "Event year (overrides config)")
	rf.StringVar(&c.part, "part", "", "Only run this part")
	rf.BoolVar(&c.sample, "sample", false, "Only run the samples from the solution doc comments")
	rf.BoolVar(&c.checkSamples, "check-samples", false, "Check samples before running the real input")
	rootCmd.MarkFlagsMutuallyExclusive("sample", "check-samples")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newListCmd())
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets where answers and diagnostics are written.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
	c.stderr = stderr
	c.log = aoc.NewLogger(stderr, c.debug)
}

// Logger returns the logger configured by the last Execute.
func (c *CLI) Logger() zerolog.Logger {
	return c.log
}
