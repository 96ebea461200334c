package commands

import (
	"strings"

	aoc "github.com/maisem/advent2023"
	"github.com/spf13/cobra"
)

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	r, err := c.newRunner(cmd)
	if err != nil {
		return err
	}
	if strings.EqualFold(args[0], "all") {
		_, err := r.RunAll(cmd.Context(), c.reg)
		return err
	}
	day, err := aoc.ParseDay(args[0])
	if err != nil {
		return err
	}
	_, err = r.Run(cmd.Context(), c.reg, day)
	return err
}

func (c *CLI) newRunner(cmd *cobra.Command) (*aoc.Runner, error) {
	cfg, err := aoc.LoadConfig(c.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = c.inputDir
	}
	if cmd.Flags().Changed("year") {
		cfg.Year = c.year
	}

	mode := aoc.SamplesOff
	switch {
	case c.sample:
		mode = aoc.SamplesOnly
	case c.checkSamples:
		mode = aoc.SamplesCheck
	}

	c.log.Debug().
		Str("config", c.configPath).
		Int("year", cfg.Year).
		Str("input_dir", cfg.InputDir).
		Bool("session", cfg.Session != "").
		Msg("configuration loaded")

	return &aoc.Runner{
		Year:     cfg.Year,
		Out:      cmd.OutOrStdout(),
		Inputs:   aoc.NewDirSource(cfg, c.log),
		Log:      c.log,
		Samples:  mode,
		Part:     c.part,
		Expected: cfg.Expected,
	}, nil
}
