package days

import (
	"fmt"
	"math"
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (solver) D6p1(p *aoc.Puzzle) aoc.Answer {
	times, records := parseRaces(p)
	if len(times) != len(records) {
		panic(fmt.Sprintf("%d times but %d records", len(times), len(records)))
	}
	ways := make([]int, len(times))
	for i, t := range times {
		ways[i] = waysToWin(t, records[i])
	}
	return aoc.Answer{Label: "Product of all ways to win races", Value: aoc.Product(ways...)}
}

// want=71503
func (solver) D6p2(p *aoc.Puzzle) aoc.Answer {
	lines := p.Lines()
	if len(lines) < 2 {
		panic("want a time line and a distance line")
	}
	joined := func(line string) int {
		_, v, _ := strings.Cut(line, ":")
		return aoc.Int(strings.ReplaceAll(v, " ", ""))
	}
	return aoc.Answer{Label: "Ways to win the race", Value: waysToWin(joined(lines[0]), joined(lines[1]))}
}

func parseRaces(p *aoc.Puzzle) (times, records []int) {
	for _, line := range p.Lines() {
		label, v, _ := strings.Cut(line, ":")
		switch label {
		case "Time":
			times = aoc.Ints(v)
		case "Distance":
			records = aoc.Ints(v)
		}
	}
	return times, records
}

// waysToWin returns how many whole-millisecond hold times beat record in a
// race lasting t. Holding for h travels h*(t-h).
func waysToWin(t, record int) int {
	if t*t < 4*record {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -t, record)
	beats := func(h int) bool { return h*(t-h) > record }

	// The float roots can be off by one for large races.
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	for first > 0 && beats(first-1) {
		first--
	}
	for first <= last && !beats(first) {
		first++
	}
	for last < t && beats(last+1) {
		last++
	}
	for last >= first && !beats(last) {
		last--
	}
	if last < first {
		return 0
	}
	return last - first + 1
}
