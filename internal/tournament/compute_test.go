package tournament

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(t *testing.T) (*Engine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	return NewEngine(zap.New(core), fixedClock(t)), logs
}

func luckyLog() string {
	return handText(2001, []seat{{"Carol", 1500}, {"Dave", 1500}, {"Alice", 1500}, {"Bob", 1500}}, carolDaveBody) +
		handText(2002, []seat{{"Carol", 780}, {"Dave", 2220}, {"Alice", 1500}, {"Bob", 1500}}, splitBody) +
		handText(2003, []seat{{"Alice", 1500}, {"Bob", 1500}}, finalBody)
}

func TestComputeEndToEnd(t *testing.T) {
	engine, logs := newTestEngine(t)
	res := engine.Compute([]byte(luckyLog()))

	assert.Equal(t, "3791234567", res.TournamentID)
	assert.Equal(t, "November 02, 2024 at 08:21 PM", res.TournamentDate)
	assert.Equal(t, 4, res.TotalPlayers)

	require.Len(t, res.BadBeatEvents, 1)
	bb := res.BadBeatEvents[0]
	assert.Equal(t, "Carol", bb.Victim)
	assert.Equal(t, "Dave", bb.OtherParty)
	assert.Contains(t, bb.WinnerHand, "flush")

	// Dave takes Calling Station before the Luck Award is evaluated, so his
	// suckout does not earn a second behavioral award.
	assert.Equal(t, []winnerByTitle{
		{TitleChampion, "Alice"},
		{TitleRunnerUp, "Bob"},
		{TitleBubbleBoy, "Dave"},
		{TitleCallingStation, "Dave"},
		{TitleTightest, "Alice"},
		{TitleBluffer, "Carol"},
	}, winners(res.Awards))

	require.Len(t, res.Players, 4)
	assert.Equal(t, "Carol", res.Players[0].Name)
	assert.Equal(t, 1, logs.FilterMessage("tournament log processed").Len())
}

func TestComputeIsIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t)
	raw := []byte(sixPlayerLog() + luckyLog())

	first, err := json.Marshal(engine.Compute(raw))
	require.NoError(t, err)
	second, err := json.Marshal(engine.Compute(raw))
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestComputeConcurrentCallsAreIndependent(t *testing.T) {
	engine, _ := newTestEngine(t)
	inputs := [][]byte{[]byte(sixPlayerLog()), []byte(luckyLog()), nil}

	want := make([][]byte, len(inputs))
	for i, in := range inputs {
		b, err := json.Marshal(engine.Compute(in))
		require.NoError(t, err)
		want[i] = b
	}

	var wg sync.WaitGroup
	got := make([][]byte, 3*len(inputs))
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = json.Marshal(engine.Compute(inputs[i%len(inputs)]))
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.JSONEq(t, string(want[i%len(inputs)]), string(got[i]))
	}
}

func TestComputeEmptyInputFallback(t *testing.T) {
	engine, logs := newTestEngine(t)
	res := engine.Compute(nil)

	assert.Equal(t, 6, res.TotalPlayers)
	assert.Equal(t, "Unknown", res.TournamentID)
	assert.Equal(t, FallbackAwards(), res.Awards)
	assert.Equal(t, "March 14, 2025 at 09:30 PM", res.TournamentDate)
	assert.NotNil(t, res.BadBeatEvents)
	assert.Equal(t, 1, logs.FilterMessage("no hands found in log, using fallback result").Len())

	titles := make([]string, 0, len(res.Awards))
	for _, a := range res.Awards {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{
		"🏆 Tournament Champion",
		"🥈 Runner Up",
		"🔥 Most Aggressive",
		"📞 Calling Station",
		"🍀 Luckiest Player",
		"🤐 Tightest Player",
	}, titles)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"bad_beat_events":[]`)
}

func TestComputeNoMarkersFallback(t *testing.T) {
	engine, _ := newTestEngine(t)
	inputs := []string{
		"just some text",
		"*** SHOW DOWN ***\nAlice: shows [Ah Ad] (a pair of Aces)\n",
		"Seat 1: Alice (1500 in chips)\nAlice: raises 20 to 40\n",
		string([]byte{0xff, 0xfe, 0x00, 0x41}),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			res := engine.Compute([]byte(in))
			assert.Equal(t, engine.Fallback(), res)
		})
	}
}

func TestComputeSameShapeAsFallback(t *testing.T) {
	engine, _ := newTestEngine(t)

	keys := func(r *Result) []string {
		b, err := json.Marshal(r)
		require.NoError(t, err)
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(b, &m))
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		return out
	}
	assert.ElementsMatch(t, keys(engine.Fallback()), keys(engine.Compute([]byte(sixPlayerLog()))))
}

func TestComputeHandsWithoutSeats(t *testing.T) {
	engine, logs := newTestEngine(t)
	res := engine.Compute([]byte("PokerStars Hand #1: Tournament #99\nnothing else\n"))

	assert.Equal(t, engine.Fallback(), res)
	assert.Equal(t, "Unknown", res.TournamentID)
	assert.Equal(t, 6, res.TotalPlayers)
	assert.Equal(t, 1, logs.FilterMessage("no seated players found in log, using fallback result").Len())
}

func TestComputeCRLF(t *testing.T) {
	engine, _ := newTestEngine(t)
	unix := engine.Compute([]byte(sixPlayerLog()))

	crlf := []byte{}
	for _, b := range []byte(sixPlayerLog()) {
		if b == '\n' {
			crlf = append(crlf, '\r')
		}
		crlf = append(crlf, b)
	}
	assert.Equal(t, unix, engine.Compute(crlf))
}
