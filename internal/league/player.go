package league

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/scorebot/internal/models"
)

var ErrMalformedEntry = errors.New("malformed roster entry")

const (
	slotBench         = "BE"
	slotInjuryReserve = "IR"

	playerMatchThreshold = 0.7
)

type Player struct {
	ID                int
	FullName          string
	FirstName         string
	LastName          string
	Active            bool
	Injured           bool
	InjuryStatus      string
	DefaultPositionID int
	Position          string
	EligibleSlots     []int
	ProTeamID         int
	Jersey            string
	PercentOwned      float64

	LineupSlotID  int
	LineupSlot    string
	FantasyTeamID int
	ScoreForWeek  float64

	lookup *Lookup
}

func newPlayer(lookup *Lookup, entry models.RosterEntry) (Player, error) {
	if entry.PlayerPoolEntry == nil || entry.PlayerPoolEntry.Player == nil {
		return Player{}, fmt.Errorf("%w: entry for player %d has no player data", ErrMalformedEntry, entry.PlayerID)
	}
	pool := entry.PlayerPoolEntry
	raw := pool.Player
	if raw.FullName == "" {
		return Player{}, fmt.Errorf("%w: player %d has no name", ErrMalformedEntry, raw.ID)
	}

	p := Player{
		ID:                raw.ID,
		FullName:          raw.FullName,
		FirstName:         raw.FirstName,
		LastName:          raw.LastName,
		Active:            raw.Active,
		Injured:           raw.Injured,
		InjuryStatus:      raw.InjuryStatus,
		DefaultPositionID: raw.DefaultPositionID,
		EligibleSlots:     raw.EligibleSlots,
		ProTeamID:         raw.ProTeamID,
		Jersey:            raw.Jersey,
		PercentOwned:      raw.Ownership.PercentOwned,
		LineupSlotID:      entry.LineupSlotID,
		LineupSlot:        lookup.SlotLabel(entry.LineupSlotID),
		FantasyTeamID:     pool.OnTeamID,
		lookup:            lookup,
	}
	if pos, ok := lookup.PositionLabel(raw.DefaultPositionID); ok {
		p.Position = pos
	}
	if pool.AppliedStatTotal != nil {
		p.ScoreForWeek = round1(*pool.AppliedStatTotal)
	}

	return p, nil
}

func (p Player) IsStarter() bool {
	return p.LineupSlot != slotBench && p.LineupSlot != slotInjuryReserve
}

func (p Player) IsInjured() bool {
	lookup := p.lookup
	if lookup == nil {
		lookup = DefaultLookup()
	}
	return lookup.IsInjuredStatus(p.InjuryStatus)
}

type Roster struct {
	TeamID  int
	Players []Player
}

// NewRoster builds one Player per entry, keeping upstream order.
func NewRoster(lookup *Lookup, teamID int, raw models.Roster) (*Roster, error) {
	r := &Roster{
		TeamID:  teamID,
		Players: make([]Player, 0, len(raw.Entries)),
	}
	for i, entry := range raw.Entries {
		p, err := newPlayer(lookup, entry)
		if err != nil {
			return nil, fmt.Errorf("building roster for team %d, entry %d: %w", teamID, i, err)
		}
		r.Players = append(r.Players, p)
	}
	return r, nil
}

func (r *Roster) filter(keep func(Player) bool) []Player {
	var out []Player
	for _, p := range r.Players {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Roster) Starters() []Player {
	return r.filter(Player.IsStarter)
}

func (r *Roster) Bench() []Player {
	return r.filter(func(p Player) bool { return !p.IsStarter() })
}

func (r *Roster) InjuredPlayers() []Player {
	return r.filter(Player.IsInjured)
}

// FindPlayer returns the closest name match above the similarity threshold.
func (r *Roster) FindPlayer(name string) (Player, bool) {
	best, score := bestPlayerMatch(r.Players, name)
	return best, score > 0
}

func bestPlayerMatch(players []Player, name string) (Player, float64) {
	var best Player
	bestScore := 0.0
	query := strings.ToLower(name)

	for _, p := range players {
		similarity := nameSimilarity(query, strings.ToLower(p.FullName))
		if similarity > playerMatchThreshold && similarity > bestScore {
			bestScore = similarity
			best = p
		}
	}
	return best, bestScore
}

func nameSimilarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	distance := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
