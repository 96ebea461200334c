package days

import (
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (solver) D1p1(p *aoc.Puzzle) aoc.Answer {
	sum := 0
	for _, line := range p.Lines() {
		sum += calibrationValue(line, false)
	}
	return aoc.Answer{Label: "Sum of all of the calibration values", Value: sum}
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (solver) D1p2(p *aoc.Puzzle) aoc.Answer {
	sum := 0
	for _, line := range p.Lines() {
		sum += calibrationValue(line, true)
	}
	return aoc.Answer{Label: "Sum of all of the fixed calibration values", Value: sum}
}

var digitNames = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibrationValue combines the first and last digit of line into a two
// digit number. Spelled digits may overlap ("eightwo" is 8 then 2).
func calibrationValue(line string, spelled bool) int {
	first, last := -1, -1
	for i := 0; i < len(line) && first < 0; i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
		}
	}
	for i := len(line) - 1; i >= 0 && last < 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
		}
	}
	if first < 0 {
		panic("no digit in line " + line)
	}
	return first*10 + last
}

func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; '1' <= c && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, name := range digitNames {
		if strings.HasPrefix(line[i:], name) {
			return n + 1, true
		}
	}
	return 0, false
}
