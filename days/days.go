// Package days holds the Advent of Code 2023 solutions.
//
// Each part is a method named D{day}p{part} on solver. A part's doc comment
// may start with want=<answer> followed by a sample input; a sample with no
// input reuses the one above it.
package days

import (
	"embed"

	aoc "github.com/maisem/advent2023"
)

//go:embed day*.go
var sources embed.FS

type solver struct{}

// Registry returns a registry of every day's parts and samples.
func Registry() (*aoc.Registry, error) {
	return aoc.NewRegistry(solver{}, sources)
}
