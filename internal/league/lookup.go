package league

// Lookup carries the fixed ESPN tables used to derive player state. Builders
// take it as a dependency so tests can swap in alternate mappings.
type Lookup struct {
	LineupSlots    map[int]string
	Positions      map[int]string
	InjuryStatuses []string
}

// Number of leading InjuryStatuses entries that count as healthy.
const healthyStatuses = 2

// DefaultLookup returns a fresh copy of ESPN's football tables.
func DefaultLookup() *Lookup {
	return &Lookup{
		LineupSlots: map[int]string{
			0:  "QB",
			2:  "RB",
			3:  "RB/WR",
			4:  "WR",
			6:  "TE",
			16: "D/ST",
			17: "K",
			20: "BE",
			21: "IR",
			23: "FLEX",
		},
		Positions: map[int]string{
			1:  "QB",
			2:  "RB",
			3:  "WR",
			4:  "TE",
			5:  "K",
			16: "D/ST",
		},
		InjuryStatuses: []string{
			"ACTIVE",
			"PROBABLE",
			"QUESTIONABLE",
			"DOUBTFUL",
			"OUT",
			"INJURY_RESERVE",
			"DAY_TO_DAY",
			"FIFTEEN_DAY_DL",
			"SIXTY_DAY_DL",
			"SEVEN_DAY_DL",
			"TEN_DAY_DL",
			"BEREAVEMENT",
			"PATERNITY",
			"SUSPENSION",
		},
	}
}

// SlotLabel returns "" for slot ids missing from the table.
func (l *Lookup) SlotLabel(slotID int) string {
	return l.LineupSlots[slotID]
}

// PositionLabel maps a defaultPositionId to its short name.
func (l *Lookup) PositionLabel(positionID int) (string, bool) {
	pos, ok := l.Positions[positionID]
	return pos, ok
}

func (l *Lookup) statusIndex(status string) int {
	for i, s := range l.InjuryStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// IsInjuredStatus reports whether status sits past the healthy entries of the
// ordered status list. Unknown statuses are treated as healthy.
func (l *Lookup) IsInjuredStatus(status string) bool {
	return l.statusIndex(status) >= healthyStatuses
}
