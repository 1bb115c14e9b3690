package tournament

import "fmt"

const (
	TitleChampion       = "🏆 Tournament Champion"
	TitleRunnerUp       = "🥈 Runner Up"
	TitleBubbleBoy      = "💀 Bubble Boy"
	TitleMostAggressive = "🔥 Most Aggressive"
	TitleCallingStation = "📞 Calling Station"
	TitleTightest       = "🧊 Tightest (Rock Award)"
	TitleLuck           = "🍀 Luck Award"
	TitleBluffer        = "🎭 Biggest Bluffer"
)

const (
	minAggressionHands = 5
	minBlufferBets     = 2
	minBubblePlayers   = 4
)

// awardRule produces at most one award. Placement rules see every player;
// behavioral rules only see players without a behavioral award yet.
type awardRule struct {
	behavioral bool
	evaluate   func(table *Table, eligible []*PlayerStat) (AwardEntry, bool)
}

var awardRules = []awardRule{
	{evaluate: champion},
	{evaluate: runnerUp},
	{evaluate: bubbleBoy},
	{behavioral: true, evaluate: mostAggressive},
	{behavioral: true, evaluate: callingStation},
	{behavioral: true, evaluate: tightest},
	{behavioral: true, evaluate: luckAward},
	{behavioral: true, evaluate: bluffer},
}

// EvaluateAwards runs the award rules in display order. An empty table gets
// the fallback set.
func EvaluateAwards(table *Table) []AwardEntry {
	if table.Len() == 0 {
		return FallbackAwards()
	}

	credited := make(map[string]bool)
	awards := make([]AwardEntry, 0, len(awardRules))
	for _, rule := range awardRules {
		eligible := table.Players()
		if rule.behavioral {
			var open []*PlayerStat
			for _, p := range eligible {
				if !credited[p.Name] {
					open = append(open, p)
				}
			}
			eligible = open
		}
		award, ok := rule.evaluate(table, eligible)
		if !ok {
			continue
		}
		if rule.behavioral {
			credited[award.Winner] = true
		}
		awards = append(awards, award)
	}
	return awards
}

func champion(table *Table, _ []*PlayerStat) (AwardEntry, bool) {
	p, ok := table.PlayerWithPosition(1)
	if !ok {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleChampion,
		Winner:      p.Name,
		Description: "Survived the chaos and claimed the crown",
		Stat:        fmt.Sprintf("Outlasted %d other players", table.Len()-1),
	}, true
}

func runnerUp(table *Table, _ []*PlayerStat) (AwardEntry, bool) {
	p, ok := table.PlayerWithPosition(2)
	if !ok {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleRunnerUp,
		Winner:      p.Name,
		Description: "So close to glory, yet so far",
		Stat:        "Heads-up warrior",
	}, true
}

// BubblePosition is ceil((n+1)/2), or 0 when the field is too small.
func BubblePosition(n int) int {
	if n < minBubblePlayers {
		return 0
	}
	return (n + 2) / 2
}

func bubbleBoy(table *Table, _ []*PlayerStat) (AwardEntry, bool) {
	pos := BubblePosition(table.Len())
	if pos == 0 {
		return AwardEntry{}, false
	}
	p, ok := table.PlayerWithPosition(pos)
	if !ok {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleBubbleBoy,
		Winner:      p.Name,
		Description: "Knocked out just before the money in heartbreaking fashion",
		Stat:        fmt.Sprintf("Finished #%d", pos),
	}, true
}

func ratio(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// best returns the first player with the highest score, or with the lowest
// when lowest is set. Players failing the filter are skipped.
func best(players []*PlayerStat, filter func(*PlayerStat) bool, score func(*PlayerStat) float64, lowest bool) (*PlayerStat, float64) {
	var winner *PlayerStat
	var top float64
	for _, p := range players {
		if !filter(p) {
			continue
		}
		s := score(p)
		if winner == nil || (!lowest && s > top) || (lowest && s < top) {
			winner, top = p, s
		}
	}
	return winner, top
}

func hasHands(p *PlayerStat) bool { return p.HandsPlayed > 0 }

func mostAggressive(_ *Table, eligible []*PlayerStat) (AwardEntry, bool) {
	p, r := best(eligible,
		func(p *PlayerStat) bool { return p.HandsPlayed > minAggressionHands },
		func(p *PlayerStat) float64 { return ratio(p.AggressiveActions, p.HandsPlayed) },
		false)
	if p == nil {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleMostAggressive,
		Winner:      p.Name,
		Description: "Fearless bets and raises kept everyone on edge",
		Stat:        fmt.Sprintf("%.2f aggressive actions per hand", r),
	}, true
}

func callingStation(_ *Table, eligible []*PlayerStat) (AwardEntry, bool) {
	p, r := best(eligible, hasHands,
		func(p *PlayerStat) float64 { return ratio(p.Calls, p.HandsPlayed) },
		false)
	if p == nil {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleCallingStation,
		Winner:      p.Name,
		Description: "Never saw a bet they didn't want to call",
		Stat:        fmt.Sprintf("%.2f calls per hand", r),
	}, true
}

func tightest(_ *Table, eligible []*PlayerStat) (AwardEntry, bool) {
	p, r := best(eligible, hasHands,
		func(p *PlayerStat) float64 { return ratio(p.HandsVoluntarilyPlayed, p.HandsPlayed) },
		true)
	if p == nil {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleTightest,
		Winner:      p.Name,
		Description: "Waited patiently for the premiums",
		Stat:        fmt.Sprintf("Played %.1f%% of hands", r*100),
	}, true
}

func luckAward(_ *Table, eligible []*PlayerStat) (AwardEntry, bool) {
	for _, p := range eligible {
		if len(p.Suckouts) == 0 {
			continue
		}
		details := make([]string, 0, len(p.Suckouts))
		for _, s := range p.Suckouts {
			details = append(details, s.Narrative)
		}
		return AwardEntry{
			Title:       TitleLuck,
			Winner:      p.Name,
			Description: "Caught miracle cards when it mattered most",
			Stat:        fmt.Sprintf("%d suckout(s)", len(p.Suckouts)),
			Details:     details,
		}, true
	}
	return AwardEntry{}, false
}

func bluffer(_ *Table, eligible []*PlayerStat) (AwardEntry, bool) {
	p, _ := best(eligible,
		func(p *PlayerStat) bool { return p.Bets > minBlufferBets },
		func(p *PlayerStat) float64 { return ratio(p.Bets, max(p.Showdowns, 1)) },
		false)
	if p == nil {
		return AwardEntry{}, false
	}
	return AwardEntry{
		Title:       TitleBluffer,
		Winner:      p.Name,
		Description: "Firing barrels with air, keeping the table guessing",
		Stat:        fmt.Sprintf("%d bets, %d showdowns", p.Bets, p.Showdowns),
	}, true
}
