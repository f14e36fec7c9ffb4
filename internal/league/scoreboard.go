package league

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/omarshaarawi/scorebot/internal/models"
)

var (
	ErrInvalidIdentifier = errors.New("team identifier must be a number or a string")
	ErrTeamNotFound      = errors.New("no team matches")
)

// AmbiguousTeamError is returned when a search matches more than one team.
type AmbiguousTeamError struct {
	Query      string
	Candidates []*Team
}

func (e *AmbiguousTeamError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, t := range e.Candidates {
		names[i] = t.FullTeamName()
	}
	return fmt.Sprintf("%q matches several teams: %s", e.Query, strings.Join(names, ", "))
}

type ResolutionStatus int

const (
	Invalid ResolutionStatus = iota
	Found
	NotFound
	Ambiguous
)

// Resolution is the outcome of turning a user supplied identifier into a team id.
type Resolution struct {
	Status     ResolutionStatus
	TeamID     int
	Candidates []*Team
}

func (r Resolution) Err(identifier any) error {
	switch r.Status {
	case Found:
		return nil
	case NotFound:
		return fmt.Errorf("%w %v", ErrTeamNotFound, identifier)
	case Ambiguous:
		return &AmbiguousTeamError{Query: fmt.Sprint(identifier), Candidates: r.Candidates}
	default:
		return fmt.Errorf("%w, got %T", ErrInvalidIdentifier, identifier)
	}
}

// SideScore is a team's display info with its score for one matchup.
type SideScore struct {
	DisplayInfo
	TeamID    int     `json:"teamId"`
	Score     float64 `json:"score"`
	Projected float64 `json:"projected"`
}

// ScorePair is one matchup seen from the queried team's side.
type ScorePair struct {
	MatchupPeriodID int       `json:"matchupPeriodId"`
	Team            SideScore `json:"team"`
	Opponent        SideScore `json:"opponent"`
}

// MatchupResult is a matchup in home/away orientation.
type MatchupResult struct {
	MatchupPeriodID int
	Home            SideScore
	Away            SideScore
	Winner          string
}

type Scoreboard struct {
	Teams    []*Team
	Schedule []models.MatchupScore
	period   int
}

// NewScoreboard keeps only matchups of scoringPeriod; zero keeps every period.
func NewScoreboard(teams []*Team, schedule []models.MatchupScore, scoringPeriod int) *Scoreboard {
	filtered := make([]models.MatchupScore, 0, len(schedule))
	for _, m := range schedule {
		if scoringPeriod == 0 || m.MatchupPeriodID == scoringPeriod {
			filtered = append(filtered, m)
		}
	}
	return &Scoreboard{
		Teams:    teams,
		Schedule: filtered,
		period:   scoringPeriod,
	}
}

func (s *Scoreboard) ScoringPeriod() int {
	return s.period
}

func (s *Scoreboard) Team(id int) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Resolve maps an identifier to a team id. Numbers are used as-is, numeric
// strings are parsed, any other string must match exactly one team.
func (s *Scoreboard) Resolve(identifier any) Resolution {
	if v, ok := identifier.(string); ok {
		if id, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return Resolution{Status: Found, TeamID: id}
		}
		return s.search(v)
	}

	id, whole, ok := numericID(identifier)
	switch {
	case !ok:
		slog.Warn("Cannot identify team", "identifier", identifier)
		return Resolution{Status: Invalid}
	case !whole:
		slog.Info("No team has a fractional id", "identifier", identifier)
		return Resolution{Status: NotFound}
	default:
		return Resolution{Status: Found, TeamID: id}
	}
}

// numericID converts any Go number to a team id. whole is false for floats
// with a fractional part.
func numericID(v any) (id int, whole, ok bool) {
	switch n := v.(type) {
	case int:
		return n, true, true
	case int8:
		return int(n), true, true
	case int16:
		return int(n), true, true
	case int32:
		return int(n), true, true
	case int64:
		return int(n), true, true
	case uint:
		return int(n), true, true
	case uint8:
		return int(n), true, true
	case uint16:
		return int(n), true, true
	case uint32:
		return int(n), true, true
	case uint64:
		return int(n), true, true
	case float32:
		return floatID(float64(n))
	case float64:
		return floatID(n)
	default:
		return 0, false, false
	}
}

func floatID(f float64) (int, bool, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false, true
	}
	return int(f), true, true
}

func (s *Scoreboard) search(query string) Resolution {
	re := searchPattern(query)
	var matches []*Team
	for _, t := range s.Teams {
		if t.matches(re) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		slog.Info("No team matches", "query", query)
		return Resolution{Status: NotFound}
	case 1:
		return Resolution{Status: Found, TeamID: matches[0].ID}
	default:
		slog.Info("Multiple teams match", "query", query, "count", len(matches))
		return Resolution{Status: Ambiguous, Candidates: matches}
	}
}

// ScoreData returns every matchup of the identified team, in schedule order.
func (s *Scoreboard) ScoreData(identifier any) ([]ScorePair, error) {
	res := s.Resolve(identifier)
	if err := res.Err(identifier); err != nil {
		return nil, err
	}

	pairs := []ScorePair{}
	for _, m := range s.Schedule {
		if m.Home == nil || m.Away == nil {
			continue
		}

		var self, opponent *models.TeamScore
		switch res.TeamID {
		case m.Home.TeamID:
			self, opponent = m.Home, m.Away
		case m.Away.TeamID:
			self, opponent = m.Away, m.Home
		default:
			continue
		}

		pairs = append(pairs, ScorePair{
			MatchupPeriodID: m.MatchupPeriodID,
			Team:            s.side(self),
			Opponent:        s.side(opponent),
		})
	}
	return pairs, nil
}

// Matchups lists every head-to-head matchup on the board. Byes are skipped.
func (s *Scoreboard) Matchups() []MatchupResult {
	var out []MatchupResult
	for _, m := range s.Schedule {
		if m.Home == nil || m.Away == nil {
			continue
		}
		out = append(out, MatchupResult{
			MatchupPeriodID: m.MatchupPeriodID,
			Home:            s.side(m.Home),
			Away:            s.side(m.Away),
			Winner:          m.Winner,
		})
	}
	return out
}

func (s *Scoreboard) side(ts *models.TeamScore) SideScore {
	side := SideScore{
		TeamID:    ts.TeamID,
		Score:     SideScoreValue(ts),
		Projected: round1(ts.TotalProjectedPointsLive),
	}
	if t := s.Team(ts.TeamID); t != nil {
		side.DisplayInfo = t.DisplayInfo()
	} else {
		slog.Warn("Matchup references unknown team", "teamId", ts.TeamID)
	}
	return side
}

// SideScoreValue prefers the per-period roster total, rounded to one decimal,
// and falls back to the side's totalPoints.
func SideScoreValue(ts *models.TeamScore) float64 {
	if ts.RosterForCurrentScoringPeriod != nil {
		return round1(ts.RosterForCurrentScoringPeriod.AppliedStatTotal)
	}
	return ts.TotalPoints
}
