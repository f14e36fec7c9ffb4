package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omarshaarawi/scorebot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, cfg config.ESPNAPI, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(cfg)
	client.BaseURL = srv.URL
	return NewAPI(client)
}

func TestClient_Get_QueryAndCookies(t *testing.T) {
	cfg := config.ESPNAPI{LeagueID: "454525", Private: true, SWID: "{abc}", ESPNS2: "s2", ESPNAuth: "auth"}

	var gotPath, gotCookie string
	var gotViews []string
	api := newTestAPI(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotViews = r.URL.Query()["view"]
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"id": 454525}`))
	})

	var out struct {
		ID int `json:"id"`
	}
	err := api.client.Get(context.Background(), "/x", map[string]string{"view": "mTeam, mRoster"}, nil, &out)
	require.NoError(t, err)

	assert.Equal(t, "/x", gotPath)
	assert.Equal(t, []string{"mTeam", "mRoster"}, gotViews)
	assert.Equal(t, "espn_s2=s2; SWID={abc}; espn_auth=auth", gotCookie)
	assert.Equal(t, 454525, out.ID)
}

func TestClient_Get_PublicLeagueSendsNoCookie(t *testing.T) {
	var gotCookie string
	api := newTestAPI(t, config.ESPNAPI{LeagueID: "1"}, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{}`))
	})

	var out map[string]any
	require.NoError(t, api.client.Get(context.Background(), "/", nil, nil, &out))
	assert.Empty(t, gotCookie)
}

func TestAPI_Rosters(t *testing.T) {
	var gotPath, gotPeriod string
	api := newTestAPI(t, config.ESPNAPI{LeagueID: "77"}, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPeriod = r.URL.Query().Get("scoringPeriodId")
		w.Write([]byte(`{"teams": [{"id": 1, "roster": {"entries": [
			{"lineupSlotId": 20, "playerPoolEntry": {"id": 9, "player": {"id": 9, "fullName": "Test Player"}}}
		]}}]}`))
	})

	resp, err := api.Rosters(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, "/seasons/2024/segments/0/leagues/77", gotPath)
	assert.Equal(t, "3", gotPeriod)
	require.Len(t, resp.Teams, 1)
	require.NotNil(t, resp.Teams[0].Roster)
	assert.Equal(t, "Test Player", resp.Teams[0].Roster.Entries[0].PlayerPoolEntry.Player.FullName)
}

func TestAPI_ProTeamSchedules(t *testing.T) {
	var gotPath string
	api := newTestAPI(t, config.ESPNAPI{}, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"settings": {"proTeams": [{"id": 3, "abbrev": "CHI", "byeWeek": 7}]}}`))
	})

	resp, err := api.ProTeamSchedules(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "/seasons/2024", gotPath)
	require.Len(t, resp.Settings.ProTeams, 1)
	assert.Equal(t, 7, resp.Settings.ProTeams[0].ByeWeek)
}

func TestAPI_FailureIsNoData(t *testing.T) {
	api := newTestAPI(t, config.ESPNAPI{LeagueID: "1"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := api.MatchupScores(context.Background(), 2019, 1)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "2019")
}
