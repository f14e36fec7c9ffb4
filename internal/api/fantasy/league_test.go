package fantasy

import (
	"context"
	"testing"

	"github.com/omarshaarawi/scorebot/internal/api/espn"
	"github.com/omarshaarawi/scorebot/internal/league"
	"github.com/omarshaarawi/scorebot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	settings  *models.LeagueResponse
	teams     *models.LeagueResponse
	rosters   *models.LeagueResponse
	schedule  *models.LeagueResponse
	proTeams  *models.ProTeamSchedulesResponse
	calls     []string
	rosterFor int
}

func (f *fakeSource) result(name string, resp *models.LeagueResponse) (*models.LeagueResponse, error) {
	f.calls = append(f.calls, name)
	if resp == nil {
		return nil, espn.ErrNoData
	}
	return resp, nil
}

func (f *fakeSource) LeagueSettings(ctx context.Context, year int) (*models.LeagueResponse, error) {
	return f.result("mSettings", f.settings)
}

func (f *fakeSource) Teams(ctx context.Context, year int) (*models.LeagueResponse, error) {
	return f.result("mTeam", f.teams)
}

func (f *fakeSource) Rosters(ctx context.Context, year, scoringPeriod int) (*models.LeagueResponse, error) {
	f.rosterFor = scoringPeriod
	return f.result("mRoster", f.rosters)
}

func (f *fakeSource) MatchupScores(ctx context.Context, year, scoringPeriod int) (*models.LeagueResponse, error) {
	return f.result("mMatchupScore", f.schedule)
}

func (f *fakeSource) ProTeamSchedules(ctx context.Context, year int) (*models.ProTeamSchedulesResponse, error) {
	f.calls = append(f.calls, "proTeamSchedules_wl")
	if f.proTeams == nil {
		return nil, espn.ErrNoData
	}
	return f.proTeams, nil
}

func leagueSource() *fakeSource {
	return &fakeSource{
		teams: &models.LeagueResponse{
			Members: []models.Member{
				{ID: "o1", FirstName: "A", LastName: "B"},
				{ID: "o2", FirstName: "C", LastName: "D"},
			},
			Teams: []models.Team{
				{ID: 1, Owners: []string{"o1"}, Location: "City", Nickname: "Wolves"},
				{ID: 2, Owners: []string{"o2"}, Location: "Town", Nickname: "Bears"},
			},
		},
		rosters: &models.LeagueResponse{
			Teams: []models.Team{
				{ID: 1, Roster: &models.Roster{Entries: []models.RosterEntry{{
					LineupSlotID: 0,
					PlayerPoolEntry: &models.PlayerPoolEntry{
						Player: &models.Player{ID: 5, FullName: "Test Quarterback"},
					},
				}}}},
			},
		},
		schedule: &models.LeagueResponse{
			Schedule: []models.MatchupScore{
				{
					MatchupPeriodID: 1,
					Home:            &models.TeamScore{TeamID: 1, TotalPoints: 100},
					Away:            &models.TeamScore{TeamID: 2, TotalPoints: 90},
				},
				{
					MatchupPeriodID: 2,
					Home:            &models.TeamScore{TeamID: 2, TotalPoints: 0},
					Away:            &models.TeamScore{TeamID: 1, TotalPoints: 0},
				},
			},
		},
	}
}

func TestGetTeams_JoinsRosters(t *testing.T) {
	src := leagueSource()
	api := NewAPI(src, league.DefaultLookup())

	teams, err := api.GetTeams(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, []string{"mTeam", "mRoster"}, src.calls)
	assert.Equal(t, 1, src.rosterFor)
	require.Len(t, teams[0].Roster.Players, 1)
	assert.Equal(t, "QB", teams[0].Roster.Players[0].LineupSlot)
	assert.Empty(t, teams[1].Roster.Players)
}

func TestGetScoreboard(t *testing.T) {
	api := NewAPI(leagueSource(), league.DefaultLookup())

	sb, err := api.GetScoreboard(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.Len(t, sb.Schedule, 1)

	pairs, err := sb.ScoreData(1)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "City Wolves", pairs[0].Team.TeamName)
	assert.Equal(t, "A B", pairs[0].Team.Owners)
	assert.Equal(t, 100.0, pairs[0].Team.Score)
	assert.Equal(t, "Town Bears", pairs[0].Opponent.TeamName)
	assert.Equal(t, 90.0, pairs[0].Opponent.Score)
}

func TestGetScoreboard_NoData(t *testing.T) {
	src := leagueSource()
	src.schedule = nil
	api := NewAPI(src, league.DefaultLookup())

	_, err := api.GetScoreboard(context.Background(), 2019, 0)
	assert.ErrorIs(t, err, espn.ErrNoData)
}

func TestGetLeagueMetadata(t *testing.T) {
	src := &fakeSource{settings: &models.LeagueResponse{
		ID:       454525,
		Settings: models.Settings{Name: "Test League"},
		Status:   models.Status{CurrentMatchupPeriod: 6},
	}}
	api := NewAPI(src, league.DefaultLookup())

	md, err := api.GetLeagueMetadata(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, models.LeagueMetadata{LeagueID: 454525, Name: "Test League", CurrentWeek: 6}, *md)
}

func TestGetNFLTeams_NoData(t *testing.T) {
	api := NewAPI(&fakeSource{}, league.DefaultLookup())

	_, err := api.GetNFLTeams(context.Background(), 2024)
	assert.ErrorIs(t, err, espn.ErrNoData)
}
