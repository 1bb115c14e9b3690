package tournament

import (
	"fmt"
	"strings"

	"github.com/coder/quartz"
	"go.uber.org/zap"
)

// Engine turns raw hand-history logs into tournament results. It carries no
// per-log state, so one Engine can serve concurrent uploads.
type Engine struct {
	log   *zap.Logger
	clock quartz.Clock
}

func NewEngine(log *zap.Logger, clock quartz.Clock) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Engine{log: log, clock: clock}
}

func (e *Engine) Fallback() *Result {
	return Fallback(e.clock)
}

// Compute never fails: empty input and internal errors both produce the
// fallback result.
func (e *Engine) Compute(raw []byte) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("hand history parse failed, using fallback result",
				zap.String("panic", fmt.Sprint(r)),
				zap.Int("bytes", len(raw)),
			)
			result = e.Fallback()
		}
	}()

	text := decode(raw)
	hands := Segment(text)
	if len(hands) == 0 {
		e.log.Warn("no hands found in log, using fallback result", zap.Int("bytes", len(raw)))
		return e.Fallback()
	}

	table := NewTable()
	var showdowns, splits, badBeats int
	for _, hand := range hands {
		Accumulate(table, hand)
		outcome := AnalyzeShowdown(table, hand)
		if outcome.Showdown {
			showdowns++
		}
		if outcome.Split {
			splits++
		}
		badBeats += outcome.BadBeats
	}
	if table.Len() == 0 {
		e.log.Warn("no seated players found in log, using fallback result",
			zap.Int("hands", len(hands)),
			zap.Int("bytes", len(raw)),
		)
		return e.Fallback()
	}
	AssignPositions(table, hands[len(hands)-1])

	info := ParseInfo(text)
	info.PlayerCount = table.Len()

	e.log.Info("tournament log processed",
		zap.String("tournamentID", info.ID),
		zap.Int("hands", len(hands)),
		zap.Int("players", info.PlayerCount),
		zap.Int("showdowns", showdowns),
		zap.Int("splitPots", splits),
		zap.Int("badBeats", badBeats),
	)

	return &Result{
		TournamentDate: info.DisplayDate(e.clock),
		TournamentID:   info.ID,
		TotalPlayers:   info.PlayerCount,
		Awards:         EvaluateAwards(table),
		BadBeatEvents:  flattenBadBeats(table),
		Players:        summarize(table),
	}
}

func decode(raw []byte) string {
	text := strings.ToValidUTF8(string(raw), "�")
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func flattenBadBeats(table *Table) []BadBeat {
	out := []BadBeat{}
	for _, p := range table.Players() {
		for _, ev := range p.BadBeats {
			out = append(out, BadBeat{Victim: p.Name, BadBeatEvent: ev})
		}
	}
	return out
}

func summarize(table *Table) []PlayerSummary {
	out := make([]PlayerSummary, 0, table.Len())
	for _, p := range table.Players() {
		out = append(out, PlayerSummary{
			Name:                   p.Name,
			HandsPlayed:            p.HandsPlayed,
			HandsVoluntarilyPlayed: p.HandsVoluntarilyPlayed,
			AggressiveActions:      p.AggressiveActions,
			PassiveActions:         p.PassiveActions,
			Showdowns:              p.Showdowns,
			ShowdownWins:           p.ShowdownWins,
			TotalWon:               p.TotalWon,
			MaxChips:               p.MaxChips,
			FinalPosition:          p.FinalPosition,
		})
	}
	return out
}
