// Package main is the entry point for the advent2023 runner.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	aoc "github.com/maisem/advent2023"
	"github.com/maisem/advent2023/cmd/advent2023/commands"
	"github.com/maisem/advent2023/days"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg, err := days.Registry()
	if err != nil {
		l := aoc.NewLogger(stderr, false)
		l.Error().Err(err).Fields(aoc.ErrorFields(err)).Msg("failed to register solutions")
		return 1
	}

	cli := commands.New(reg)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)
	if err := cli.Execute(ctx); err != nil {
		l := cli.Logger()
		l.Error().Err(err).Fields(aoc.ErrorFields(err)).Msg("run failed")
		return 1
	}
	return 0
}
