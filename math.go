package aoc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the whitespace separated fields of s.
func Ints(s string) []int {
	var out []int
	for _, f := range strings.Fields(s) {
		out = append(out, Int(f))
	}
	return out
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// largest first when a is positive.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	d := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if d < 0 {
		panic("no real roots")
	}
	d = math.Sqrt(d)
	a2 := 2 * float64(a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		result = result / GCD(result, v) * v
	}
	return result
}
