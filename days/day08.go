package days

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (solver) D8p1(p *aoc.Puzzle) aoc.Answer {
	w := parseWasteland(p)
	if _, ok := w.nodes["AAA"]; !ok {
		panic("no AAA node")
	}
	steps := w.walk("AAA", func(id string) bool { return id == "ZZZ" })
	return aoc.Answer{Label: "Steps to traverse wasteland", Value: steps}
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (solver) D8p2(p *aoc.Puzzle) aoc.Answer {
	w := parseWasteland(p)
	var starts []string
	for id := range w.nodes {
		if strings.HasSuffix(id, "A") {
			starts = append(starts, id)
		}
	}
	slices.Sort(starts)
	isEnd := func(id string) bool { return strings.HasSuffix(id, "Z") }

	// Every ghost reaches its end after a whole number of loops over the
	// instructions and then cycles with that same period.
	cycles := make([]int, len(starts))
	for i, s := range starts {
		cycles[i] = w.walk(s, isEnd)
	}
	p.Debugf("cycle lengths %v", cycles)
	return aoc.Answer{Label: "Steps to traverse wasteland as ghost", Value: aoc.LCM(cycles...)}
}

type wastelandNode struct {
	left, right string
}

type wasteland struct {
	instructions string
	nodes        map[string]wastelandNode
}

// walk follows the instructions from start, repeating them as needed, and
// returns the number of steps until isEnd holds.
func (w wasteland) walk(start string, isEnd func(string) bool) int {
	cur := start
	steps := 0
	for !isEnd(cur) {
		n, ok := w.nodes[cur]
		if !ok {
			panic(fmt.Sprintf("unknown node %q", cur))
		}
		if w.instructions[steps%len(w.instructions)] == 'L' {
			cur = n.left
		} else {
			cur = n.right
		}
		steps++
	}
	return steps
}

func parseWasteland(p *aoc.Puzzle) wasteland {
	sections := p.Sections()
	if len(sections) != 2 {
		panic(fmt.Sprintf("want instructions and nodes, got %d sections", len(sections)))
	}
	w := wasteland{
		instructions: strings.TrimSpace(sections[0][0]),
		nodes:        make(map[string]wastelandNode),
	}
	if w.instructions == "" || strings.Trim(w.instructions, "LR") != "" {
		panic(fmt.Sprintf("invalid instructions: %q", w.instructions))
	}
	for _, line := range sections[1] {
		id, rest, ok := strings.Cut(line, " = ")
		if !ok {
			panic(fmt.Sprintf("invalid node: %q", line))
		}
		left, right, ok := strings.Cut(strings.Trim(rest, "()"), ", ")
		if !ok {
			panic(fmt.Sprintf("invalid node: %q", line))
		}
		w.nodes[id] = wastelandNode{left: left, right: right}
	}
	return w
}
