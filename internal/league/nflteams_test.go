package league

import (
	"testing"
	"time"

	"github.com/omarshaarawi/scorebot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	week1Kickoff = time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC)
	week2Kickoff = time.Date(2024, 9, 15, 20, 25, 0, 0, time.UTC)
)

func testDirectory() *NFLTeamDirectory {
	var raw models.ProTeamSchedulesResponse
	raw.Settings.ProTeams = []models.ProTeam{
		{
			ID: 3, Abbrev: "CHI", Location: "Chicago", Name: "Bears", ByeWeek: 7,
			ProGamesByScoringPeriod: map[string][]models.ProGame{
				"1": {{ID: 10, Date: week1Kickoff.UnixMilli(), HomeProTeamID: 3, AwayProTeamID: 34}},
				"2": {{ID: 11, Date: week2Kickoff.UnixMilli(), HomeProTeamID: 34, AwayProTeamID: 3}},
			},
		},
		{ID: 19, Abbrev: "NYG", Location: "New York", Name: "Giants", ByeWeek: 11},
		{ID: 20, Abbrev: "NYJ", Location: "New York", Name: "Jets", ByeWeek: 12},
	}
	return NewNFLTeamDirectory(raw)
}

func TestNewNFLTeamDirectory_GameDates(t *testing.T) {
	d := testDirectory()
	assert.True(t, d.FirstGameDate.Equal(week1Kickoff))
	assert.True(t, d.LastGameDate.Equal(week2Kickoff))
	require.Len(t, d.ProTeams, 3)
	assert.Equal(t, "Chicago Bears", d.ProTeams[0].FullName())
}

func TestNFLTeamDirectory_TeamByPlayer(t *testing.T) {
	d := testDirectory()

	team, ok := d.TeamByPlayer(Player{FullName: "DJ Moore", ProTeamID: 3})
	require.True(t, ok)
	assert.Equal(t, "CHI", team.Abbrev)

	_, ok = d.TeamByPlayer(Player{FullName: "Free Agent", ProTeamID: 0})
	assert.False(t, ok)
}

func TestNFLTeamDirectory_Team(t *testing.T) {
	d := testDirectory()

	for _, identifier := range []string{"3", "chi", "CHICAGO", "bears"} {
		team, ok := d.Team(identifier)
		require.True(t, ok, identifier)
		assert.Equal(t, 3, team.ID, identifier)
	}

	team, ok := d.Team("new york")
	require.True(t, ok)
	assert.Equal(t, "NYG", team.Abbrev)

	_, ok = d.Team("99")
	assert.False(t, ok)
}

func TestNFLTeamDirectory_MatchupTime(t *testing.T) {
	d := testDirectory()

	kickoff, ok := d.MatchupTime("Bears", 2)
	require.True(t, ok)
	assert.True(t, kickoff.Equal(week2Kickoff))

	_, ok = d.MatchupTime("Bears", 0)
	assert.False(t, ok)
	_, ok = d.MatchupTime("Bears", 18)
	assert.False(t, ok)
	_, ok = d.MatchupTime("Bears", 7)
	assert.False(t, ok)
	_, ok = d.MatchupTime("Packers", 1)
	assert.False(t, ok)
}

func TestNFLTeamDirectory_ByeWeek(t *testing.T) {
	d := testDirectory()

	week, ok := d.ByeWeek("jets")
	require.True(t, ok)
	assert.Equal(t, 12, week)

	_, ok = d.ByeWeek("Packers")
	assert.False(t, ok)
}
