package days

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (solver) D5p1(p *aoc.Puzzle) aoc.Answer {
	a := parseAlmanac(p)
	best := -1
	for _, seed := range a.seeds {
		loc := a.location(seed)
		if best < 0 || loc < best {
			best = loc
		}
	}
	return aoc.Answer{Label: "Minimal location", Value: best}
}

// want=46
func (solver) D5p2(p *aoc.Puzzle) aoc.Answer {
	a := parseAlmanac(p)
	if len(a.seeds)%2 != 0 {
		panic(fmt.Sprintf("odd number of seed values: %d", len(a.seeds)))
	}
	var ranges []span
	for i := 0; i < len(a.seeds); i += 2 {
		ranges = append(ranges, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	for _, m := range a.maps {
		var next []span
		for _, r := range ranges {
			next = append(next, m.mapSpan(r)...)
		}
		ranges = next
	}
	best := -1
	for _, r := range ranges {
		if best < 0 || r.start < best {
			best = r.start
		}
	}
	p.Debugf("%d location ranges", len(ranges))
	return aoc.Answer{Label: "Minimal location with ranges", Value: best}
}

// span is the half-open range [start, end).
type span struct {
	start, end int
}

type mapEntry struct {
	dst, src, n int
}

func (e mapEntry) srcEnd() int { return e.src + e.n }

// almanacMap is a list of entries sorted by source start.
type almanacMap []mapEntry

func (m almanacMap) lookup(v int) int {
	for _, e := range m {
		if v >= e.src && v < e.srcEnd() {
			return v - e.src + e.dst
		}
	}
	return v
}

// mapSpan maps every value in r, splitting it where entries begin and end.
// Values not covered by any entry map to themselves.
func (m almanacMap) mapSpan(r span) []span {
	var out []span
	cur := r.start
	for _, e := range m {
		if cur >= r.end {
			break
		}
		if e.srcEnd() <= cur {
			continue
		}
		if e.src >= r.end {
			break
		}
		if cur < e.src {
			out = append(out, span{cur, e.src})
			cur = e.src
		}
		end := min(e.srcEnd(), r.end)
		out = append(out, span{cur - e.src + e.dst, end - e.src + e.dst})
		cur = end
	}
	if cur < r.end {
		out = append(out, span{cur, r.end})
	}
	return out
}

type almanac struct {
	seeds []int
	maps  []almanacMap
}

func (a almanac) location(seed int) int {
	v := seed
	for _, m := range a.maps {
		v = m.lookup(v)
	}
	return v
}

func parseAlmanac(p *aoc.Puzzle) almanac {
	sections := p.Sections()
	if len(sections) == 0 {
		panic("empty almanac")
	}
	seeds, ok := strings.CutPrefix(sections[0][0], "seeds:")
	if !ok {
		panic(fmt.Sprintf("invalid seeds line: %q", sections[0][0]))
	}
	a := almanac{seeds: aoc.Ints(seeds)}
	for _, sec := range sections[1:] {
		var m almanacMap
		for _, line := range sec[1:] {
			v := aoc.Ints(line)
			if len(v) != 3 {
				panic(fmt.Sprintf("invalid map entry: %q", line))
			}
			m = append(m, mapEntry{dst: v[0], src: v[1], n: v[2]})
		}
		slices.SortFunc(m, func(a, b mapEntry) int { return a.src - b.src })
		a.maps = append(a.maps, m)
	}
	return a
}
