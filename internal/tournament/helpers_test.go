package tournament

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
)

type seat struct {
	name  string
	chips int
}

func handText(id int, seats []seat, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PokerStars Hand #%d: Tournament #3791234567, $1.00+$0.10 USD Hold'em No Limit - Level I (10/20) - 2024/11/02 20:%02d:00 ET\n", id, id%60)
	b.WriteString("Table '3791234567 1' 9-max Seat #1 is the button\n")
	for i, s := range seats {
		fmt.Fprintf(&b, "Seat %d: %s (%d in chips)\n", i+1, s.name, s.chips)
	}
	b.WriteString(strings.TrimLeft(body, "\n"))
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func record(t *testing.T, text string) HandRecord {
	t.Helper()
	hands := Segment(text)
	if len(hands) != 1 {
		t.Fatalf("expected exactly one hand, got %d", len(hands))
	}
	return hands[0]
}

func fixedClock(t *testing.T) *quartz.Mock {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 3, 14, 21, 30, 0, 0, time.UTC))
	return clock
}

const carolDaveBody = `
Carol: posts small blind 10
Dave: posts big blind 20
*** HOLE CARDS ***
Carol: raises 40 to 60
Dave: calls 40
*** FLOP *** [Jh 7c 2h]
Carol: bets 100
Dave: calls 100
*** TURN *** [Jh 7c 2h] [5h]
Carol: checks
Dave: checks
*** RIVER *** [Jh 7c 2h 5h] [Kd]
Carol: bets 200
Dave: calls 200
*** SHOW DOWN ***
Carol: shows [Jc Jd] (three of a kind, Jacks)
Dave: shows [Ah 9h] (a flush, Ace high)
Dave collected 720 from pot
*** SUMMARY ***
Total pot 720 | Rake 0
Board [Jh 7c 2h 5h Kd]
Seat 1: Carol (small blind) showed [Jc Jd] and lost with three of a kind, Jacks
Seat 2: Dave (big blind) showed [Ah 9h] and won (720) with a flush, Ace high
`

const splitBody = `
Carol: posts small blind 10
Dave: posts big blind 20
*** HOLE CARDS ***
Carol: calls 10
Dave: checks
*** FLOP *** [Jh 7c 2h]
Carol: bets 40
Dave: calls 40
*** TURN *** [Jh 7c 2h] [5h]
Carol: checks
Dave: checks
*** RIVER *** [Jh 7c 2h 5h] [Kd]
Carol: checks
Dave: checks
*** SHOW DOWN ***
Carol: shows [Jc Jd] (three of a kind, Jacks)
Dave: shows [Ah 9h] (a flush, Ace high)
Carol collected 60 from pot
Dave collected 60 from pot
*** SUMMARY ***
Total pot 120 | Rake 0
Seat 1: Carol (small blind) showed [Jc Jd] and won (60) with three of a kind, Jacks
Seat 2: Dave (big blind) showed [Ah 9h] and won (60) with a flush, Ace high
`

const foldedBody = `
Alice: posts small blind 10
Bob: posts big blind 20
*** HOLE CARDS ***
Carol: folds
Alice: raises 60 to 80
Bob: folds
Uncalled bet (60) returned to Alice
Alice collected 40 from pot
*** SUMMARY ***
Total pot 40 | Rake 0
Seat 1: Alice (small blind) collected (40)
Seat 2: Bob (big blind) folded before Flop
Seat 3: Carol folded before Flop (didn't bet)
`

// finalBody is a heads-up terminal hand that Alice wins against Bob.
const finalBody = `
Alice: posts small blind 100
Bob: posts big blind 200
*** HOLE CARDS ***
Alice: raises 5800 to 6000 and is all-in
Bob: calls 2800 and is all-in
Uncalled bet (3000) returned to Alice
*** FLOP *** [2c 8d Th]
*** TURN *** [2c 8d Th] [3s]
*** RIVER *** [2c 8d Th 3s] [4h]
*** SHOW DOWN ***
Alice: shows [Ac Ad] (a pair of Aces)
Bob: shows [Kc Kd] (a pair of Kings)
Alice collected 6000 from pot
Bob finished the tournament in 2nd place
Alice wins the tournament - congratulations!
*** SUMMARY ***
Total pot 6000 | Rake 0
Board [2c 8d Th 3s 4h]
Seat 1: Alice (small blind) showed [Ac Ad] and won (6000) with a pair of Aces
Seat 2: Bob (big blind) showed [Kc Kd] and lost with a pair of Kings
`

// sixPlayerLog is a three-hand tournament: a six-handed opener, a four-handed
// middle hand and the heads-up finish.
func sixPlayerLog() string {
	return "Hand history export\n\n" +
		handText(1001, []seat{
			{"Alice", 1500}, {"Bob", 1500}, {"Carol", 1800},
			{"Dana", 3200}, {"Erin", 2500}, {"Finn", 1000},
		}, foldedBody) +
		handText(1002, []seat{
			{"Alice", 4000}, {"Bob", 3000}, {"Dana", 2000}, {"Erin", 1000},
		}, foldedBody) +
		handText(1003, []seat{{"Alice", 6000}, {"Bob", 3000}}, finalBody)
}
