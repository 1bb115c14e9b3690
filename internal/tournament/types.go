package tournament

import "time"

// HandRecord is the raw text of one played hand, in log order.
type HandRecord struct {
	HandID       string
	TournamentID string
	Text         string
}

type TournamentInfo struct {
	ID          string
	StartedAt   *time.Time
	PlayerCount int
}

// BadBeatEvent is stored on the losing player. OtherParty is the winner.
type BadBeatEvent struct {
	HandID     string `json:"hand_id"`
	OtherParty string `json:"other_party"`
	LoserHand  string `json:"loser_hand_description"`
	WinnerHand string `json:"winner_hand_description"`
	Narrative  string `json:"narrative"`
}

// SuckoutEvent mirrors a BadBeatEvent on the winning player. OtherParty is the loser.
type SuckoutEvent struct {
	HandID     string `json:"hand_id"`
	OtherParty string `json:"other_party"`
	LoserHand  string `json:"loser_hand_description"`
	WinnerHand string `json:"winner_hand_description"`
	Narrative  string `json:"narrative"`
}

type PlayerStat struct {
	Name string

	HandsPlayed            int
	Raises                 int
	Calls                  int
	Folds                  int
	Bets                   int
	Checks                 int
	Showdowns              int
	ShowdownWins           int
	HandsVoluntarilyPlayed int
	AggressiveActions      int
	PassiveActions         int
	TotalWon               int64
	MaxChips               int64

	// FinalPosition is 0 while unranked.
	FinalPosition int

	BadBeats []BadBeatEvent
	Suckouts []SuckoutEvent
}

// Table is the per-computation player aggregate. Iteration order is the
// order in which players were first seated.
type Table struct {
	players map[string]*PlayerStat
	order   []string
}

func NewTable() *Table {
	return &Table{players: make(map[string]*PlayerStat)}
}

func (t *Table) Get(name string) (*PlayerStat, bool) {
	p, ok := t.players[name]
	return p, ok
}

func (t *Table) Len() int {
	return len(t.order)
}

// Players returns the stats in first-seen order.
func (t *Table) Players() []*PlayerStat {
	out := make([]*PlayerStat, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.players[name])
	}
	return out
}

func (t *Table) seat(name string, chips int64) *PlayerStat {
	p, ok := t.players[name]
	if !ok {
		p = &PlayerStat{Name: name, MaxChips: chips}
		t.players[name] = p
		t.order = append(t.order, name)
	}
	p.HandsPlayed++
	if chips > p.MaxChips {
		p.MaxChips = chips
	}
	return p
}

// PlayerWithPosition returns the player holding pos, if any.
func (t *Table) PlayerWithPosition(pos int) (*PlayerStat, bool) {
	for _, p := range t.Players() {
		if p.FinalPosition == pos {
			return p, true
		}
	}
	return nil, false
}

type AwardEntry struct {
	Title       string   `json:"title"`
	Winner      string   `json:"winner"`
	Description string   `json:"description"`
	Stat        string   `json:"stat"`
	Details     []string `json:"details,omitempty"`
}

// BadBeat is a BadBeatEvent tagged with its victim, as published.
type BadBeat struct {
	Victim string `json:"victim"`
	BadBeatEvent
}

type PlayerSummary struct {
	Name                   string `json:"name"`
	HandsPlayed            int    `json:"hands_played"`
	HandsVoluntarilyPlayed int    `json:"hands_voluntarily_played"`
	AggressiveActions      int    `json:"aggressive_actions"`
	PassiveActions         int    `json:"passive_actions"`
	Showdowns              int    `json:"showdowns"`
	ShowdownWins           int    `json:"showdown_wins"`
	TotalWon               int64  `json:"total_won"`
	MaxChips               int64  `json:"max_chips"`
	FinalPosition          int    `json:"final_position,omitempty"`
}

type Result struct {
	TournamentDate string          `json:"tournament_date"`
	TournamentID   string          `json:"tournament_id"`
	TotalPlayers   int             `json:"total_players"`
	Awards         []AwardEntry    `json:"awards"`
	BadBeatEvents  []BadBeat       `json:"bad_beat_events"`
	Players        []PlayerSummary `json:"players"`
}
