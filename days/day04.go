package days

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (solver) D4p1(p *aoc.Puzzle) aoc.Answer {
	sum := 0
	for _, line := range p.Lines() {
		if n := parseScratchcard(line).matches(); n > 0 {
			sum += 1 << (n - 1)
		}
	}
	return aoc.Answer{Label: "Sum of all scratchcards points", Value: sum}
}

// want=30
func (solver) D4p2(p *aoc.Puzzle) aoc.Answer {
	var cards []scratchcard
	for _, line := range p.Lines() {
		cards = append(cards, parseScratchcard(line))
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Answer{Label: "Total number of scratchcards", Value: aoc.Sum(copies...)}
}

type scratchcard struct {
	id      int
	winning aoc.Set[int]
	have    aoc.Set[int]
}

func (c scratchcard) matches() int {
	return len(c.winning.Intersect(c.have))
}

// parseScratchcard parses a line like "Card 1: 41 48 83 | 83 86  6".
func parseScratchcard(line string) scratchcard {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		panic(fmt.Sprintf("invalid card: %q", line))
	}
	winning, have, ok := strings.Cut(rest, "|")
	if !ok {
		panic(fmt.Sprintf("invalid card: %q", line))
	}
	return scratchcard{
		id:      aoc.Int(strings.TrimPrefix(head, "Card")),
		winning: aoc.NewSet(aoc.Ints(winning)...),
		have:    aoc.NewSet(aoc.Ints(have)...),
	}
}
