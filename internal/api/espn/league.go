package espn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/omarshaarawi/scorebot/internal/models"
)

// ErrNoData means the upstream could not answer for the requested season.
var ErrNoData = errors.New("no data")

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) leagueEndpoint(year int) string {
	return fmt.Sprintf("/seasons/%d/segments/0/leagues/%s", year, a.client.Config.LeagueID)
}

// fetch issues a single request. Failures are logged here and reported to
// callers only as ErrNoData.
func (a *API) fetch(ctx context.Context, year int, endpoint string, params map[string]string, result interface{}) error {
	if err := a.client.Get(ctx, endpoint, params, nil, result); err != nil {
		slog.Error("ESPN request failed", "endpoint", endpoint, "view", params["view"], "error", err)
		return fmt.Errorf("%w for year %d", ErrNoData, year)
	}
	return nil
}

func (a *API) LeagueSettings(ctx context.Context, year int) (*models.LeagueResponse, error) {
	var resp models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}
	if err := a.fetch(ctx, year, a.leagueEndpoint(year), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Teams returns the mTeam view: league members and team records.
func (a *API) Teams(ctx context.Context, year int) (*models.LeagueResponse, error) {
	var resp models.LeagueResponse
	params := map[string]string{
		"view": "mTeam",
	}
	if err := a.fetch(ctx, year, a.leagueEndpoint(year), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Rosters returns the mRoster view for scoringPeriod; zero asks for the
// league's current period.
func (a *API) Rosters(ctx context.Context, year, scoringPeriod int) (*models.LeagueResponse, error) {
	var resp models.LeagueResponse
	params := map[string]string{
		"view": "mRoster",
	}
	if scoringPeriod > 0 {
		params["scoringPeriodId"] = strconv.Itoa(scoringPeriod)
	}
	if err := a.fetch(ctx, year, a.leagueEndpoint(year), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MatchupScores returns the season schedule. Sides of matchups in
// scoringPeriod carry rosterForCurrentScoringPeriod.
func (a *API) MatchupScores(ctx context.Context, year, scoringPeriod int) (*models.LeagueResponse, error) {
	var resp models.LeagueResponse
	params := map[string]string{
		"view": "mMatchupScore",
	}
	if scoringPeriod > 0 {
		params["scoringPeriodId"] = strconv.Itoa(scoringPeriod)
	}
	if err := a.fetch(ctx, year, a.leagueEndpoint(year), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *API) ProTeamSchedules(ctx context.Context, year int) (*models.ProTeamSchedulesResponse, error) {
	var resp models.ProTeamSchedulesResponse
	endpoint := fmt.Sprintf("/seasons/%d", year)
	params := map[string]string{
		"view": "proTeamSchedules_wl",
	}
	if err := a.fetch(ctx, year, endpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
