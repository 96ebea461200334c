package days

import (
	"bytes"
	"context"
	"strings"
	"testing"

	aoc "github.com/maisem/advent2023"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, reg.Days())

	for _, d := range reg.Days() {
		parts, err := reg.Parts(d)
		require.NoError(t, err)
		require.Len(t, parts, 2, "day %d", d)
		for _, pt := range parts {
			_, ok := reg.Sample(pt)
			assert.True(t, ok, "%s has no sample", pt.Name)
		}
	}
}

func TestSamples(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	var out bytes.Buffer
	r := &aoc.Runner{
		Year:    aoc.DefaultYear,
		Out:     &out,
		Inputs:  aoc.StaticSource{},
		Log:     zerolog.Nop(),
		Samples: aoc.SamplesOnly,
	}
	_, err = r.RunAll(context.Background(), reg)
	require.NoError(t, err, out.String())
	assert.Equal(t, 16, strings.Count(out.String(), "✅"), out.String())
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
	}{
		{"1abc2", false, 12},
		{"pqr3stu8vwx", false, 38},
		{"a1b2c3d4e5f", false, 15},
		{"treb7uchet", false, 77},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"abcone2threexyz", true, 13},
		{"xtwone3four", true, 24},
		{"4nineeightseven2", true, 42},
		{"zoneight234", true, 14},
		{"7pqrstsixteen", true, 76},
		{"eighthree", true, 83},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calibrationValue(tt.line, tt.spelled), "%q spelled=%v", tt.line, tt.spelled)
	}
}

func TestMapSpan(t *testing.T) {
	m := almanacMap{{dst: 200, src: 50, n: 10}}

	assert.Equal(t, []span{{40, 50}, {200, 210}, {60, 70}}, m.mapSpan(span{40, 70}))
	assert.Equal(t, []span{{205, 210}, {60, 500}}, m.mapSpan(span{55, 500}))
	assert.Equal(t, []span{{0, 10}}, m.mapSpan(span{0, 10}))

	assert.Equal(t, 205, m.lookup(55))
	assert.Equal(t, 60, m.lookup(60))
}

func TestWaysToWin(t *testing.T) {
	tests := []struct{ time, record, want int }{
		{7, 9, 4},
		{15, 40, 8},
		{30, 200, 9},
		{71530, 940200, 71503},
		{2, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, waysToWin(tt.time, tt.record), "time %d record %d", tt.time, tt.record)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   handType
	}{
		{"32T3K", false, onePair},
		{"T55J5", false, threeOfAKind},
		{"KK677", false, twoPairs},
		{"KTJJT", false, twoPairs},
		{"QQQJA", false, threeOfAKind},
		{"23332", false, fullHouse},
		{"AA8AA", false, fourOfAKind},
		{"AAAAA", false, fiveOfAKind},
		{"23456", false, highCard},
		{"T55J5", true, fourOfAKind},
		{"KTJJT", true, fourOfAKind},
		{"QQQJA", true, fourOfAKind},
		{"2233J", true, fullHouse},
		{"JJJJJ", true, fiveOfAKind},
		{"J2345", true, onePair},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.cards, tt.jokers), "%s jokers=%v", tt.cards, tt.jokers)
	}
}

func TestJokersAreWeakest(t *testing.T) {
	a := parseHand("JKKK2 1", true)
	b := parseHand("QQQQ2 1", true)
	assert.Equal(t, a.kind, b.kind)
	assert.Negative(t, compareHands(a, b))
}

func TestWastelandValidation(t *testing.T) {
	bad := aoc.NewPuzzle(2023, 8, []byte("LRX\n\nAAA = (ZZZ, ZZZ)\nZZZ = (ZZZ, ZZZ)\n"))
	assert.Panics(t, func() { solver{}.D8p1(bad) })
}
