package league

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/omarshaarawi/scorebot/internal/models"
)

const (
	firstWeek = 1
	lastWeek  = 17
)

type ProGame struct {
	ID            int64
	Kickoff       time.Time
	HomeProTeamID int
	AwayProTeamID int
}

type ProTeam struct {
	ID       int
	Abbrev   string
	Location string
	Name     string
	ByeWeek  int
	// Games keyed by scoring period.
	Games map[int][]ProGame
}

func (t *ProTeam) FullName() string {
	return t.Location + " " + t.Name
}

type NFLTeamDirectory struct {
	FirstGameDate time.Time
	LastGameDate  time.Time
	ProTeams      []ProTeam
}

func NewNFLTeamDirectory(raw models.ProTeamSchedulesResponse) *NFLTeamDirectory {
	d := &NFLTeamDirectory{ProTeams: make([]ProTeam, 0, len(raw.Settings.ProTeams))}

	for _, rt := range raw.Settings.ProTeams {
		pt := ProTeam{
			ID:       rt.ID,
			Abbrev:   rt.Abbrev,
			Location: rt.Location,
			Name:     rt.Name,
			ByeWeek:  rt.ByeWeek,
			Games:    make(map[int][]ProGame, len(rt.ProGamesByScoringPeriod)),
		}

		for key, games := range rt.ProGamesByScoringPeriod {
			period, err := strconv.Atoi(key)
			if err != nil {
				slog.Warn("Skipping unparseable scoring period", "team", rt.Abbrev, "period", key)
				continue
			}
			for _, g := range games {
				kickoff := time.UnixMilli(g.Date).UTC()
				pt.Games[period] = append(pt.Games[period], ProGame{
					ID:            g.ID,
					Kickoff:       kickoff,
					HomeProTeamID: g.HomeProTeamID,
					AwayProTeamID: g.AwayProTeamID,
				})
				d.trackDate(kickoff)
			}
			sort.Slice(pt.Games[period], func(i, j int) bool {
				return pt.Games[period][i].Kickoff.Before(pt.Games[period][j].Kickoff)
			})
		}

		d.ProTeams = append(d.ProTeams, pt)
	}

	return d
}

func (d *NFLTeamDirectory) trackDate(t time.Time) {
	if d.FirstGameDate.IsZero() || t.Before(d.FirstGameDate) {
		d.FirstGameDate = t
	}
	if t.After(d.LastGameDate) {
		d.LastGameDate = t
	}
}

func (d *NFLTeamDirectory) TeamByPlayer(p Player) (*ProTeam, bool) {
	for i := range d.ProTeams {
		if d.ProTeams[i].ID == p.ProTeamID {
			return &d.ProTeams[i], true
		}
	}
	slog.Info("No pro team for player", "player", p.FullName, "proTeamId", p.ProTeamID)
	return nil, false
}

// Team finds a pro team by numeric id, or by abbreviation, city or nickname
// ignoring case. The first team in directory order wins.
func (d *NFLTeamDirectory) Team(identifier string) (*ProTeam, bool) {
	identifier = strings.TrimSpace(identifier)
	id, idErr := strconv.Atoi(identifier)

	for i := range d.ProTeams {
		t := &d.ProTeams[i]
		if idErr == nil {
			if t.ID == id {
				return t, true
			}
			continue
		}
		if strings.EqualFold(t.Abbrev, identifier) ||
			strings.EqualFold(t.Location, identifier) ||
			strings.EqualFold(t.Name, identifier) {
			return t, true
		}
	}

	slog.Info("No pro team matches", "identifier", identifier)
	return nil, false
}

// MatchupTime returns the kickoff of the team's game in week.
func (d *NFLTeamDirectory) MatchupTime(identifier string, week int) (time.Time, bool) {
	if week < firstWeek || week > lastWeek {
		slog.Info("Week out of range", "week", week)
		return time.Time{}, false
	}

	t, ok := d.Team(identifier)
	if !ok {
		return time.Time{}, false
	}

	games := t.Games[week]
	if len(games) == 0 {
		slog.Info("No game scheduled", "team", t.Abbrev, "week", week)
		return time.Time{}, false
	}
	return games[0].Kickoff, true
}

func (d *NFLTeamDirectory) ByeWeek(identifier string) (int, bool) {
	t, ok := d.Team(identifier)
	if !ok || t.ByeWeek == 0 {
		return 0, false
	}
	return t.ByeWeek, true
}
