package tournament

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	showdownMarker = "*** SHOW DOWN ***"
	summaryMarker  = "*** SUMMARY ***"
)

var (
	seatRe    = regexp.MustCompile(`(?m)^Seat \d+: (.+?) \((\d+) in chips`)
	actionRe  = regexp.MustCompile(`(?m)^(.+?): (raises|calls|folds|bets|checks)\b(.*)$`)
	outcomeRe = regexp.MustCompile(`(?m)^Seat \d+: (.+?)(?: \([^)]*\))* showed \[[^\]]*\] and (won|lost)`)
	collectRe = regexp.MustCompile(`(?m)^(.+?) collected (\d+) from (?:side |main )?pot`)
)

// Accumulate folds one hand into the table. Patterns that do not match add
// nothing; malformed text never fails.
func Accumulate(table *Table, hand HandRecord) {
	text := hand.Text

	seen := make(map[string]bool)
	for _, m := range seatRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		chips, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		seen[name] = true
		table.seat(name, chips)
	}

	voluntary := make(map[string]bool)
	for _, m := range actionRe.FindAllStringSubmatch(text, -1) {
		p, ok := table.Get(m[1])
		if !ok {
			continue
		}
		switch m[2] {
		case "raises":
			p.Raises++
			p.AggressiveActions++
		case "bets":
			p.Bets++
			p.AggressiveActions++
		case "calls":
			p.Calls++
			p.PassiveActions++
		case "checks":
			p.Checks++
			p.PassiveActions++
		case "folds":
			p.Folds++
		}
		if isVoluntary(m[2], m[3]) && !voluntary[p.Name] {
			voluntary[p.Name] = true
			p.HandsVoluntarilyPlayed++
		}
	}

	if strings.Contains(text, showdownMarker) {
		for _, m := range outcomeRe.FindAllStringSubmatch(text, -1) {
			p, ok := table.Get(m[1])
			if !ok {
				continue
			}
			p.Showdowns++
			if m[2] == "won" {
				p.ShowdownWins++
			}
		}
	}

	for _, c := range collections(text) {
		if p, ok := table.Get(c.name); ok {
			p.TotalWon += c.amount
		}
	}
}

// isVoluntary reports whether an action counts toward VPIP. Forced blind
// postings before the flop do not.
func isVoluntary(verb, rest string) bool {
	if verb != "raises" && verb != "calls" && verb != "folds" {
		return false
	}
	rest = strings.ToLower(rest)
	return !strings.Contains(rest, "blind") && !strings.Contains(rest, "before flop")
}

type collection struct {
	name   string
	amount int64
}

func collections(text string) []collection {
	var out []collection
	for _, m := range collectRe.FindAllStringSubmatch(text, -1) {
		amount, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		out = append(out, collection{name: m[1], amount: amount})
	}
	return out
}

// distinctCollectors returns collector names in first-seen order.
func distinctCollectors(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, c := range collections(text) {
		if !seen[c.name] {
			seen[c.name] = true
			names = append(names, c.name)
		}
	}
	return names
}
