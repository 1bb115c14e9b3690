package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"go.uber.org/zap"

	"awards-board/internal/tournament"
)

func fallbackResult(t *testing.T) *tournament.Result {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 3, 14, 21, 30, 0, 0, time.UTC))
	return tournament.NewEngine(zap.NewNop(), clock).Compute(nil)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, fallbackResult(t)); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	for _, key := range []string{"tournament_date", "tournament_id", "total_players", "awards", "bad_beat_events"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestWritePretty(t *testing.T) {
	res := fallbackResult(t)
	res.Players = []tournament.PlayerSummary{{Name: "Ana", HandsPlayed: 3, FinalPosition: 1}}

	var buf bytes.Buffer
	if err := writePretty(&buf, res, true); err != nil {
		t.Fatalf("writePretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Tournament #Unknown", "Tournament Champion", "Alice", "PLAYER", "Ana"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
