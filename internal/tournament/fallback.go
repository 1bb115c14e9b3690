package tournament

import "github.com/coder/quartz"

const (
	unknownTournamentID  = "Unknown"
	fallbackTotalPlayers = 6

	// The sample set keeps its own titles for these two awards.
	sampleTitleLuckiest = "🍀 Luckiest Player"
	sampleTitleTightest = "🤐 Tightest Player"
)

// FallbackAwards is the fixed award set shown when a log yields no players.
func FallbackAwards() []AwardEntry {
	return []AwardEntry{
		{Title: TitleChampion, Winner: "Alice", Description: "1st Place Winner", Stat: "Position #1"},
		{Title: TitleRunnerUp, Winner: "Bob", Description: "2nd Place", Stat: "Position #2"},
		{Title: TitleMostAggressive, Winner: "Charlie", Description: "Most raises", Stat: "23.4% of hands"},
		{Title: TitleCallingStation, Winner: "Diana", Description: "Never folds", Stat: "2.3 calls per fold"},
		{Title: sampleTitleLuckiest, Winner: "Eve", Description: "Best showdown wins", Stat: "75.0% wins"},
		{Title: sampleTitleTightest, Winner: "Frank", Description: "Most selective", Stat: "Only 34 hands"},
	}
}

// Fallback is the result substituted for empty or unparseable input. It has
// the same shape as a computed result.
func Fallback(clock quartz.Clock) *Result {
	return &Result{
		TournamentDate: TournamentInfo{}.DisplayDate(clock),
		TournamentID:   unknownTournamentID,
		TotalPlayers:   fallbackTotalPlayers,
		Awards:         FallbackAwards(),
		BadBeatEvents:  []BadBeat{},
		Players:        []PlayerSummary{},
	}
}
