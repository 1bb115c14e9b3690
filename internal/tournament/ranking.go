package tournament

// AssignPositions infers the top three finishing positions. The single
// collector of the terminal hand wins; the only other player who showed in
// that hand is second; the largest remaining stack is third. Ambiguous
// terminal hands leave 1 and 2 unassigned rather than guessing.
func AssignPositions(table *Table, terminal HandRecord) {
	assign := func(p *PlayerStat, pos int) {
		if p.FinalPosition == 0 {
			p.FinalPosition = pos
		}
	}

	collectors := distinctCollectors(terminal.Text)
	if _, taken := table.PlayerWithPosition(1); len(collectors) == 1 && !taken {
		if champ, ok := table.Get(collectors[0]); ok && champ.FinalPosition == 0 {
			assign(champ, 1)

			var others []string
			if section, ok := showdownSection(terminal.Text); ok {
				seen := make(map[string]bool)
				for _, r := range reveals(section) {
					if r.Player != champ.Name && !seen[r.Player] {
						seen[r.Player] = true
						others = append(others, r.Player)
					}
				}
			}
			if len(others) == 1 {
				if second, ok := table.Get(others[0]); ok {
					assign(second, 2)
				}
			}
		}
	}

	var third *PlayerStat
	for _, p := range table.Players() {
		if p.FinalPosition != 0 {
			continue
		}
		if third == nil || p.MaxChips > third.MaxChips {
			third = p
		}
	}
	if _, taken := table.PlayerWithPosition(3); third != nil && !taken {
		assign(third, 3)
	}
}
