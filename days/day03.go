package days

import (
	aoc "github.com/maisem/advent2023"
)

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (solver) D3p1(p *aoc.Puzzle) aoc.Answer {
	s := parseSchematic(p)
	sum := 0
	for _, n := range s.numbers {
		if len(n.symbols) > 0 {
			sum += n.value
		}
	}
	return aoc.Answer{Label: "Sum of all part numbers", Value: sum}
}

// want=467835
func (solver) D3p2(p *aoc.Puzzle) aoc.Answer {
	s := parseSchematic(p)
	gears := map[aoc.Pt][]int{}
	for _, n := range s.numbers {
		for pt := range n.symbols {
			if s.grid.At(pt) == '*' {
				gears[pt] = append(gears[pt], n.value)
			}
		}
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return aoc.Answer{Label: "Sum of all gear ratios", Value: sum}
}

type schematicNumber struct {
	value   int
	symbols aoc.Set[aoc.Pt] // adjacent symbol positions
}

type schematic struct {
	grid    aoc.Grid[byte]
	numbers []schematicNumber
}

func isSymbol(b byte) bool {
	return b != '.' && !aoc.IsDigit(b)
}

func parseSchematic(p *aoc.Puzzle) schematic {
	s := schematic{grid: p.Grid()}
	for y, row := range s.grid {
		for x := 0; x < len(row); {
			if !aoc.IsDigit(row[x]) {
				x++
				continue
			}
			n := schematicNumber{symbols: aoc.NewSet[aoc.Pt]()}
			for ; x < len(row) && aoc.IsDigit(row[x]); x++ {
				n.value = n.value*10 + int(row[x]-'0')
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(nb aoc.Pt) bool {
					if v, ok := s.grid.AtOk(nb); ok && isSymbol(v) {
						n.symbols.Add(nb)
					}
					return true
				})
			}
			s.numbers = append(s.numbers, n)
		}
	}
	p.Debugf("schematic %v (%v): %d numbers", s.grid.Size(), s.grid.Hash(), len(s.numbers))
	return s
}
