package models

import "encoding/json"

type LeagueResponse struct {
	ID       int            `json:"id"`
	Status   Status         `json:"status"`
	Settings Settings       `json:"settings"`
	Members  []Member       `json:"members"`
	Teams    []Team         `json:"teams"`
	Schedule []MatchupScore `json:"schedule"`
}

type Settings struct {
	Name string `json:"name"`
}

type Status struct {
	CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
}

// Member is an ESPN user belonging to the league.
type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// Team is the raw mTeam/mRoster team record. Fields not named here are kept
// in Extra so they can be passed through untouched.
type Team struct {
	ID           int      `json:"id"`
	Abbreviation string   `json:"abbrev"`
	Location     string   `json:"location"`
	Nickname     string   `json:"nickname"`
	Logo         string   `json:"logo"`
	Owners       []string `json:"owners"`
	PrimaryOwner string   `json:"primaryOwner"`
	DivisionID   int      `json:"divisionId"`
	PlayoffSeed  int      `json:"playoffSeed"`
	Points       float64  `json:"points"`
	Record       Record   `json:"record"`
	Roster       *Roster  `json:"roster,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var knownTeamKeys = map[string]struct{}{
	"id": {}, "abbrev": {}, "location": {}, "nickname": {}, "logo": {},
	"owners": {}, "primaryOwner": {}, "divisionId": {}, "playoffSeed": {},
	"points": {}, "record": {}, "roster": {},
}

func (t *Team) UnmarshalJSON(data []byte) error {
	type plain Team
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range knownTeamKeys {
		delete(all, key)
	}
	if len(all) > 0 {
		p.Extra = all
	}

	*t = Team(p)
	return nil
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type Record struct {
	Overall RecordDetails `json:"overall"`
}

type RecordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Percentage    float64 `json:"percentage"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type MatchupScore struct {
	ID              int        `json:"id"`
	MatchupPeriodID int        `json:"matchupPeriodId"`
	Away            *TeamScore `json:"away,omitempty"`
	Home            *TeamScore `json:"home,omitempty"`
	Winner          string     `json:"winner"`
}

// TeamScore is one side of a matchup. Depending on the requested view the
// side carries either a plain TotalPoints or a RosterForCurrentScoringPeriod.
type TeamScore struct {
	TeamID                        int              `json:"teamId"`
	TotalPoints                   float64          `json:"totalPoints"`
	TotalProjectedPointsLive      float64          `json:"totalProjectedPointsLive"`
	RosterForCurrentScoringPeriod *RosterForPeriod `json:"rosterForCurrentScoringPeriod,omitempty"`
}

type RosterForPeriod struct {
	AppliedStatTotal float64       `json:"appliedStatTotal"`
	Entries          []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	PlayerID        int              `json:"playerId"`
	LineupSlotID    int              `json:"lineupSlotId"`
	PlayerPoolEntry *PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayerPoolEntry struct {
	ID               int      `json:"id"`
	OnTeamID         int      `json:"onTeamId"`
	Player           *Player  `json:"player"`
	AppliedStatTotal *float64 `json:"appliedStatTotal"`
}

type Player struct {
	ID                int       `json:"id"`
	FullName          string    `json:"fullName"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Active            bool      `json:"active"`
	Injured           bool      `json:"injured"`
	InjuryStatus      string    `json:"injuryStatus"`
	DefaultPositionID int       `json:"defaultPositionId"`
	EligibleSlots     []int     `json:"eligibleSlots"`
	ProTeamID         int       `json:"proTeamId"`
	Jersey            string    `json:"jersey"`
	Ownership         Ownership `json:"ownership"`
}

type Ownership struct {
	PercentOwned float64 `json:"percentOwned"`
}


// ProTeamSchedulesResponse is the proTeamSchedules_wl view.
type ProTeamSchedulesResponse struct {
	Settings struct {
		ProTeams []ProTeam `json:"proTeams"`
	} `json:"settings"`
}

type ProTeam struct {
	ID                      int                  `json:"id"`
	Abbrev                  string               `json:"abbrev"`
	Location                string               `json:"location"`
	Name                    string               `json:"name"`
	ByeWeek                 int                  `json:"byeWeek"`
	ProGamesByScoringPeriod map[string][]ProGame `json:"proGamesByScoringPeriod"`
}

type ProGame struct {
	ID              int64 `json:"id"`
	Date            int64 `json:"date"`
	HomeProTeamID   int   `json:"homeProTeamId"`
	AwayProTeamID   int   `json:"awayProTeamId"`
	ScoringPeriodID int   `json:"scoringPeriodId"`
}
