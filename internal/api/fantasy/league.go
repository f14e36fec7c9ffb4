package fantasy

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/scorebot/internal/league"
	"github.com/omarshaarawi/scorebot/internal/models"
)

// Source is the upstream the builders are fed from.
type Source interface {
	LeagueSettings(ctx context.Context, year int) (*models.LeagueResponse, error)
	Teams(ctx context.Context, year int) (*models.LeagueResponse, error)
	Rosters(ctx context.Context, year, scoringPeriod int) (*models.LeagueResponse, error)
	MatchupScores(ctx context.Context, year, scoringPeriod int) (*models.LeagueResponse, error)
	ProTeamSchedules(ctx context.Context, year int) (*models.ProTeamSchedulesResponse, error)
}

// API runs each query against fresh upstream data. Nothing is cached between
// calls and fetches happen one after another.
type API struct {
	source Source
	lookup *league.Lookup
}

func NewAPI(source Source, lookup *league.Lookup) *API {
	return &API{source: source, lookup: lookup}
}

func (a *API) GetLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error) {
	resp, err := a.source.LeagueSettings(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	return &models.LeagueMetadata{
		LeagueID:    resp.ID,
		Name:        resp.Settings.Name,
		CurrentWeek: resp.Status.CurrentMatchupPeriod,
	}, nil
}

// GetTeams joins the mTeam view with the rosters for scoringPeriod.
func (a *API) GetTeams(ctx context.Context, year, scoringPeriod int) ([]*league.Team, error) {
	teamResp, err := a.source.Teams(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	rosterResp, err := a.source.Rosters(ctx, year, scoringPeriod)
	if err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}

	rosters := make(map[int]*league.Roster, len(rosterResp.Teams))
	for _, rt := range rosterResp.Teams {
		if rt.Roster == nil {
			continue
		}
		roster, err := league.NewRoster(a.lookup, rt.ID, *rt.Roster)
		if err != nil {
			return nil, err
		}
		rosters[rt.ID] = roster
	}

	teams := make([]*league.Team, 0, len(teamResp.Teams))
	for _, raw := range teamResp.Teams {
		teams = append(teams, league.BuildTeam(teamResp.Members, rosters[raw.ID], raw))
	}
	return teams, nil
}

// GetScoreboard builds the board for scoringPeriod; zero covers the season.
func (a *API) GetScoreboard(ctx context.Context, year, scoringPeriod int) (*league.Scoreboard, error) {
	teams, err := a.GetTeams(ctx, year, scoringPeriod)
	if err != nil {
		return nil, err
	}

	resp, err := a.source.MatchupScores(ctx, year, scoringPeriod)
	if err != nil {
		return nil, fmt.Errorf("fetching matchup scores: %w", err)
	}

	return league.NewScoreboard(teams, resp.Schedule, scoringPeriod), nil
}

func (a *API) GetNFLTeams(ctx context.Context, year int) (*league.NFLTeamDirectory, error) {
	resp, err := a.source.ProTeamSchedules(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetching pro team schedules: %w", err)
	}
	return league.NewNFLTeamDirectory(*resp), nil
}
