package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"go.uber.org/zap"

	"awards-board/internal/tournament"
)

type CLI struct {
	Log     string `arg:"" type:"existingfile" help:"PokerStars tournament hand history (.txt)"`
	Format  string `short:"f" enum:"pretty,json" default:"pretty" help:"Output format (pretty, json)"`
	Players bool   `short:"p" help:"Include the per-player table in pretty output"`
	Verbose bool   `short:"v" help:"Log pipeline diagnostics to stderr"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	awardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	beatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("awards"),
		kong.Description("Compute tournament awards from a hand history."))

	log := zap.NewNop()
	if cli.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()

	raw, err := os.ReadFile(cli.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading log: %v\n", err)
		ctx.Exit(1)
	}

	res := tournament.NewEngine(log, quartz.NewReal()).Compute(raw)

	switch cli.Format {
	case "json":
		err = writeJSON(os.Stdout, res)
	default:
		err = writePretty(os.Stdout, res, cli.Players)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

func writeJSON(w io.Writer, res *tournament.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func writePretty(w io.Writer, res *tournament.Result, players bool) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Tournament #%s", res.TournamentID)))
	fmt.Fprintf(w, "%s · %d players\n\n", res.TournamentDate, res.TotalPlayers)

	for _, a := range res.Awards {
		fmt.Fprintf(w, "%s  %s\n", awardStyle.Render(a.Title), winnerStyle.Render(a.Winner))
		fmt.Fprintf(w, "    %s\n", a.Description)
		fmt.Fprintf(w, "    %s\n", statStyle.Render(a.Stat))
		for _, d := range a.Details {
			fmt.Fprintf(w, "    - %s\n", d)
		}
	}

	if len(res.BadBeatEvents) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render("Bad beats"))
		for _, bb := range res.BadBeatEvents {
			fmt.Fprintf(w, "  #%s %s\n", bb.HandID, beatStyle.Render(bb.Narrative))
		}
	}

	if players && len(res.Players) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PLAYER\tFINISH\tHANDS\tVPIP\tAGG\tSHOWDOWNS\tWON\tPEAK")
		for _, p := range res.Players {
			finish := "-"
			if p.FinalPosition > 0 {
				finish = fmt.Sprint(p.FinalPosition)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d/%d\t%d\t%d\n",
				p.Name, finish, p.HandsPlayed, p.HandsVoluntarilyPlayed, p.AggressiveActions,
				p.ShowdownWins, p.Showdowns, p.TotalWon, p.MaxChips)
		}
		return tw.Flush()
	}
	return nil
}
