package days

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (solver) D2p1(p *aoc.Puzzle) aoc.Answer {
	bag := cubes{red: 12, green: 13, blue: 14}
	sum := 0
	for _, line := range p.Lines() {
		g := parseGame(line)
		if g.fewest().fitsIn(bag) {
			sum += g.id
		}
	}
	return aoc.Answer{Label: "Sum of IDs of possible games for 12 reds, 13 greens, and 14 blues", Value: sum}
}

// want=2286
func (solver) D2p2(p *aoc.Puzzle) aoc.Answer {
	sum := 0
	for _, line := range p.Lines() {
		sum += parseGame(line).fewest().power()
	}
	return aoc.Answer{Label: "Sum of minimum powers of all games", Value: sum}
}

type cubes struct {
	red, green, blue int
}

func (c cubes) fitsIn(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id    int
	draws []cubes
}

// fewest returns the fewest cubes of each colour the game could be played
// with.
func (g game) fewest() cubes {
	var out cubes
	for _, d := range g.draws {
		out.red = max(out.red, d.red)
		out.green = max(out.green, d.green)
		out.blue = max(out.blue, d.blue)
	}
	return out
}

// parseGame parses a line like "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func parseGame(line string) game {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		panic(fmt.Sprintf("invalid game: %q", line))
	}
	g := game{id: aoc.Int(strings.TrimPrefix(head, "Game "))}
	for _, draw := range strings.Split(rest, "; ") {
		var c cubes
		for _, cube := range strings.Split(draw, ", ") {
			n, color, _ := strings.Cut(strings.TrimSpace(cube), " ")
			switch color {
			case "red":
				c.red += aoc.Int(n)
			case "green":
				c.green += aoc.Int(n)
			case "blue":
				c.blue += aoc.Int(n)
			default:
				panic(fmt.Sprintf("unknown color %q in %q", color, line))
			}
		}
		g.draws = append(g.draws, c)
	}
	return g
}
