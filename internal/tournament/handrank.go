package tournament

import (
	"regexp"
	"strings"
)

// HandCategory is the coarse made-hand class revealed at showdown.
type HandCategory int

const (
	Unknown HandCategory = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[HandCategory]string{
	Unknown:       "unknown",
	HighCard:      "high card",
	Pair:          "pair",
	TwoPair:       "two pair",
	ThreeOfAKind:  "three of a kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	FourOfAKind:   "four of a kind",
	StraightFlush: "straight flush",
	RoyalFlush:    "royal flush",
}

func (c HandCategory) String() string {
	return categoryNames[c]
}

// strongTwoPairRank is the lowest top pair that makes two pair "strong".
const strongTwoPairRank = 11

// Strength orders revealed hands. Rank is the named card (2..14) and only
// matters within Pair, TwoPair and ThreeOfAKind.
type Strength struct {
	Category HandCategory
	Rank     int
}

func (s Strength) Compare(o Strength) int {
	if s.Category != o.Category {
		if s.Category > o.Category {
			return 1
		}
		return -1
	}
	switch s.Category {
	case Pair, TwoPair, ThreeOfAKind:
		switch {
		case s.Rank > o.Rank:
			return 1
		case s.Rank < o.Rank:
			return -1
		}
	}
	return 0
}

func (s Strength) StrongTwoPair() bool {
	return s.Category == TwoPair && s.Rank >= strongTwoPairRank
}

// Patterns are checked in order; the first match wins. More specific
// phrases come before the ones they contain.
var classifyPatterns = []struct {
	category HandCategory
	re       *regexp.Regexp
}{
	{RoyalFlush, regexp.MustCompile(`royal flush`)},
	{StraightFlush, regexp.MustCompile(`straight flush`)},
	{FourOfAKind, regexp.MustCompile(`four of a kind(?:,)?\s*(\w+)?`)},
	{FullHouse, regexp.MustCompile(`full house`)},
	{Flush, regexp.MustCompile(`flush`)},
	{Straight, regexp.MustCompile(`straight`)},
	{ThreeOfAKind, regexp.MustCompile(`three of a kind(?:,)?\s*(\w+)?`)},
	{TwoPair, regexp.MustCompile(`two pairs?(?:,)?\s*(\w+)?`)},
	{Pair, regexp.MustCompile(`pair of (\w+)`)},
	{HighCard, regexp.MustCompile(`high card(?:,)?\s*(\w+)?`)},
}

var rankWords = map[string]int{
	"two": 2, "twos": 2, "deuce": 2, "deuces": 2, "2": 2, "2s": 2,
	"three": 3, "threes": 3, "trey": 3, "treys": 3, "3": 3, "3s": 3,
	"four": 4, "fours": 4, "4": 4, "4s": 4,
	"five": 5, "fives": 5, "5": 5, "5s": 5,
	"six": 6, "sixes": 6, "6": 6, "6s": 6,
	"seven": 7, "sevens": 7, "7": 7, "7s": 7,
	"eight": 8, "eights": 8, "8": 8, "8s": 8,
	"nine": 9, "nines": 9, "9": 9, "9s": 9,
	"ten": 10, "tens": 10, "t": 10, "10": 10, "10s": 10,
	"jack": 11, "jacks": 11, "j": 11,
	"queen": 12, "queens": 12, "q": 12,
	"king": 13, "kings": 13, "k": 13,
	"ace": 14, "aces": 14, "a": 14,
}

// Classify maps a showdown hand description such as "three of a kind, Jacks"
// to its Strength. Unrecognised text is Unknown, which ranks below HighCard.
func Classify(description string) Strength {
	d := strings.ToLower(strings.TrimSpace(description))
	for _, p := range classifyPatterns {
		m := p.re.FindStringSubmatch(d)
		if m == nil {
			continue
		}
		s := Strength{Category: p.category}
		if len(m) > 1 {
			s.Rank = rankWords[m[1]]
		}
		return s
	}
	return Strength{Category: Unknown}
}

var (
	pairOfRe  = regexp.MustCompile(`^pair of (\w+)`)
	quadsRe   = regexp.MustCompile(`^four of a kind,?\s*(\w+)`)
	tripsRe   = regexp.MustCompile(`^three of a kind,?\s*(\w+)`)
	articleRe = regexp.MustCompile(`^(?:a|an)\s+`)
)

// Simplify turns a hand description into the short form used in bad beat
// narratives: "a pair of Aces" becomes "pocket aces", "four of a kind, Aces"
// becomes "quad aces".
func Simplify(description string) string {
	d := strings.ToLower(strings.TrimSpace(description))
	d = articleRe.ReplaceAllString(d, "")
	if m := pairOfRe.FindStringSubmatch(d); m != nil {
		return "pocket " + m[1]
	}
	if m := quadsRe.FindStringSubmatch(d); m != nil {
		return "quad " + m[1]
	}
	if m := tripsRe.FindStringSubmatch(d); m != nil {
		return "trip " + m[1]
	}
	if d == "" {
		return "unknown hand"
	}
	return d
}
