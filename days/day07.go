package days

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/advent2023"
)

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (solver) D7p1(p *aoc.Puzzle) aoc.Answer {
	return aoc.Answer{Label: "Total winnings", Value: totalWinnings(p, false)}
}

// want=5905
func (solver) D7p2(p *aoc.Puzzle) aoc.Answer {
	return aoc.Answer{Label: "Total winnings with jokers", Value: totalWinnings(p, true)}
}

type handType int

const (
	highCard handType = iota
	onePair
	twoPairs
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

const cardOrder = "23456789TJQKA"

type hand struct {
	cards string
	bid   int
	kind  handType
	ranks [5]int // card strengths, in hand order
}

func parseHand(line string, jokers bool) hand {
	cards, bid, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok || len(cards) != 5 {
		panic(fmt.Sprintf("invalid hand: %q", line))
	}
	h := hand{cards: cards, bid: aoc.Int(bid)}
	for i := range cards {
		h.ranks[i] = cardRank(cards[i], jokers)
	}
	h.kind = classify(cards, jokers)
	return h
}

// cardRank returns the strength of c. Jokers are weaker than every other
// card.
func cardRank(c byte, jokers bool) int {
	if jokers && c == 'J' {
		return 0
	}
	i := strings.IndexByte(cardOrder, c)
	if i < 0 {
		panic(fmt.Sprintf("invalid card: %q", c))
	}
	return i + 2
}

// classify returns the hand type. With jokers, J counts as whichever card
// makes the strongest hand, which is always the most frequent other card.
func classify(cards string, jokers bool) handType {
	counts := map[byte]int{}
	for i := range cards {
		counts[cards[i]]++
	}
	if jokers {
		if j := counts['J']; j > 0 && j < 5 {
			delete(counts, 'J')
			var best byte
			for c, n := range counts {
				if n > counts[best] || (n == counts[best] && c > best) {
					best = c
				}
			}
			counts[best] += j
		}
	}
	most := 0
	for _, n := range counts {
		most = max(most, n)
	}
	switch {
	case most == 5:
		return fiveOfAKind
	case most == 4:
		return fourOfAKind
	case most == 3 && len(counts) == 2:
		return fullHouse
	case most == 3:
		return threeOfAKind
	case most == 2 && len(counts) == 3:
		return twoPairs
	case most == 2:
		return onePair
	}
	return highCard
}

func compareHands(a, b hand) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return slices.Compare(a.ranks[:], b.ranks[:])
}

func totalWinnings(p *aoc.Puzzle, jokers bool) int {
	var hands []hand
	for _, line := range p.Lines() {
		hands = append(hands, parseHand(line, jokers))
	}
	slices.SortFunc(hands, compareHands)
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}
