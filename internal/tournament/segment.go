package tournament

import (
	"regexp"
	"time"

	"github.com/coder/quartz"
)

const dateLayout = "2006/01/02 15:04:05"

var (
	handMarkerRe   = regexp.MustCompile(`(?m)^PokerStars Hand #(\d+): Tournament #(\d+)`)
	tournamentIDRe = regexp.MustCompile(`Tournament #(\d+)`)
	startedAtRe    = regexp.MustCompile(`\d{4}/\d{2}/\d{2} \d{1,2}:\d{2}:\d{2}`)
)

// Segment splits a hand-history log into records. Each record starts at a
// hand marker line and runs up to the next marker or the end of the text.
// Text before the first marker is dropped. No markers means no records.
func Segment(text string) []HandRecord {
	locs := handMarkerRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	hands := make([]HandRecord, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		hands = append(hands, HandRecord{
			HandID:       text[loc[2]:loc[3]],
			TournamentID: text[loc[4]:loc[5]],
			Text:         text[loc[0]:end],
		})
	}
	return hands
}

// ParseInfo reads the tournament header fields from the first place they
// appear anywhere in the log.
func ParseInfo(text string) TournamentInfo {
	info := TournamentInfo{ID: "Unknown"}
	if m := tournamentIDRe.FindStringSubmatch(text); m != nil {
		info.ID = m[1]
	}
	if m := startedAtRe.FindString(text); m != "" {
		if ts, err := time.Parse(dateLayout, m); err == nil {
			info.StartedAt = &ts
		}
	}
	return info
}

// DisplayDate formats the start time for the board, or now when the log did
// not carry one.
func (i TournamentInfo) DisplayDate(clock quartz.Clock) string {
	ts := clock.Now()
	if i.StartedAt != nil {
		ts = *i.StartedAt
	}
	return ts.Format(displayDateLayout)
}

const displayDateLayout = "January 02, 2006 at 03:04 PM"
