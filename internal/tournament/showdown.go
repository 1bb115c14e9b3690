package tournament

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	revealRe   = regexp.MustCompile(`(?m)^(.+?): shows \[([^\]]*)\] \(([^)]*)\)`)
	splitPotRe = regexp.MustCompile(`(?i)\b(?:split(?:s)?(?: the)? pot|tie|tied|ties for|chop|chopped|chops)\b`)
	seatLineRe = regexp.MustCompile(`^Seat \d+:`)
	chatLineRe = regexp.MustCompile(`^[^"]*? said, "`)
)

// Reveal is one hand shown at showdown.
type Reveal struct {
	Player      string
	Cards       string
	Description string
}

// ShowdownOutcome describes what the analyzer concluded for one hand.
type ShowdownOutcome struct {
	Showdown bool
	Split    bool
	Winner   string
	Reveals  []Reveal
	BadBeats int
}

func showdownSection(text string) (string, bool) {
	start := strings.Index(text, showdownMarker)
	if start < 0 {
		return "", false
	}
	section := text[start+len(showdownMarker):]
	if end := strings.Index(section, summaryMarker); end >= 0 {
		section = section[:end]
	}
	return section, true
}

func reveals(section string) []Reveal {
	var out []Reveal
	for _, m := range revealRe.FindAllStringSubmatch(section, -1) {
		out = append(out, Reveal{Player: m[1], Cards: m[2], Description: m[3]})
	}
	return out
}

// isSplitPot reports a hand whose pot went to more than one player or that
// says so explicitly.
func isSplitPot(text string) bool {
	return len(distinctCollectors(text)) > 1 || announcesSplit(text)
}

// announcesSplit looks for a split phrase on dealer lines only. Seat lines,
// player lines and chat are skipped, and seated names are blanked out of
// the rest, so a player called "Bow Tie" is not a tie.
func announcesSplit(text string) bool {
	var names []string
	for _, m := range seatRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	// Longest first so "Bow Tie" is removed before "Bow".
	slices.SortFunc(names, func(a, b string) int { return len(b) - len(a) })

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seatLineRe.MatchString(line) || chatLineRe.MatchString(line) || spokenBy(line, names) {
			continue
		}
		for _, name := range names {
			line = strings.ReplaceAll(line, name, "")
		}
		if splitPotRe.MatchString(line) {
			return true
		}
	}
	return false
}

func spokenBy(line string, names []string) bool {
	for _, name := range names {
		if strings.HasPrefix(line, name+":") {
			return true
		}
	}
	return false
}

// AnalyzeShowdown records bad beats and suckouts for a hand that reached a
// showdown with a single winner. Split pots are skipped entirely.
func AnalyzeShowdown(table *Table, hand HandRecord) ShowdownOutcome {
	section, ok := showdownSection(hand.Text)
	if !ok {
		return ShowdownOutcome{}
	}
	out := ShowdownOutcome{Showdown: true, Reveals: reveals(section)}

	if isSplitPot(hand.Text) {
		out.Split = true
		return out
	}

	collectors := distinctCollectors(hand.Text)
	if len(collectors) != 1 || len(out.Reveals) < 2 {
		return out
	}
	out.Winner = collectors[0]

	var winnerReveal *Reveal
	for i := range out.Reveals {
		if out.Reveals[i].Player == out.Winner {
			winnerReveal = &out.Reveals[i]
			break
		}
	}
	if winnerReveal == nil {
		return out
	}
	winner, ok := table.Get(out.Winner)
	if !ok {
		return out
	}
	winStrength := Classify(winnerReveal.Description)

	recorded := make(map[string]bool)
	for _, r := range out.Reveals {
		if r.Player == out.Winner || recorded[r.Player] {
			continue
		}
		loser, ok := table.Get(r.Player)
		if !ok {
			continue
		}
		loseStrength := Classify(r.Description)
		if !isBadBeat(loseStrength, winStrength) {
			continue
		}
		recorded[r.Player] = true

		loserHand := Simplify(r.Description)
		winnerHand := Simplify(winnerReveal.Description)
		narrative := fmt.Sprintf("%s's %s got cracked by %s's %s", loser.Name, loserHand, winner.Name, winnerHand)

		loser.BadBeats = append(loser.BadBeats, BadBeatEvent{
			HandID:     hand.HandID,
			OtherParty: winner.Name,
			LoserHand:  loserHand,
			WinnerHand: winnerHand,
			Narrative:  narrative,
		})
		winner.Suckouts = append(winner.Suckouts, SuckoutEvent{
			HandID:     hand.HandID,
			OtherParty: loser.Name,
			LoserHand:  loserHand,
			WinnerHand: winnerHand,
			Narrative:  narrative,
		})
		out.BadBeats++
	}
	return out
}

// isBadBeat: trips or better losing to a different strength, or strong two
// pair losing to something strictly better. Equal strengths never count.
func isBadBeat(loser, winner Strength) bool {
	cmp := winner.Compare(loser)
	if cmp == 0 {
		return false
	}
	if loser.Category >= ThreeOfAKind {
		return true
	}
	return loser.StrongTwoPair() && cmp > 0
}
