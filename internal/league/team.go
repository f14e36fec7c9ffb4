package league

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"github.com/omarshaarawi/scorebot/internal/models"
)

type Owner struct {
	ID        string
	FirstName string
	LastName  string
}

func NewOwner(m models.Member) Owner {
	return Owner{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName}
}

func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

// Upstream team fields too bulky to keep around.
var droppedTeamFields = []string{"owners", "draftStrategy", "valuesByStat"}

type Team struct {
	ID           int
	Abbreviation string
	Location     string
	Nickname     string
	Logo         string
	PrimaryOwner string
	DivisionID   int
	PlayoffSeed  int
	Points       float64
	Record       models.Record

	Owners []Owner
	Roster *Roster

	// Extra holds upstream fields without a named counterpart.
	Extra map[string]json.RawMessage
}

// DisplayInfo is the summary the bot renders for a team.
type DisplayInfo struct {
	TeamName string `json:"teamName"`
	Owners   string `json:"owners"`
	Logo     string `json:"logo"`
}

// BuildTeam joins the league members with a raw team. Owners keep the order
// of members; owner ids with no member are dropped.
func BuildTeam(members []models.Member, roster *Roster, raw models.Team) *Team {
	t := &Team{
		ID:           raw.ID,
		Abbreviation: raw.Abbreviation,
		Location:     raw.Location,
		Nickname:     raw.Nickname,
		Logo:         raw.Logo,
		PrimaryOwner: raw.PrimaryOwner,
		DivisionID:   raw.DivisionID,
		PlayoffSeed:  raw.PlayoffSeed,
		Points:       raw.Points,
		Record:       raw.Record,
		Owners:       make([]Owner, 0, len(raw.Owners)),
		Roster:       roster,
	}

	for _, m := range members {
		if slices.Contains(raw.Owners, m.ID) {
			t.Owners = append(t.Owners, NewOwner(m))
		}
	}

	if len(raw.Extra) > 0 {
		t.Extra = make(map[string]json.RawMessage, len(raw.Extra))
		for k, v := range raw.Extra {
			if !slices.Contains(droppedTeamFields, k) {
				t.Extra[k] = v
			}
		}
	}

	if t.Roster == nil {
		t.Roster = &Roster{TeamID: raw.ID}
	}

	return t
}

func (t *Team) FullTeamName() string {
	return t.Location + " " + t.Nickname
}

func (t *Team) OwnerNames() string {
	names := make([]string, len(t.Owners))
	for i, o := range t.Owners {
		names[i] = o.FullName()
	}
	return strings.Join(names, ", ")
}

func (t *Team) DisplayInfo() DisplayInfo {
	return DisplayInfo{
		TeamName: t.FullTeamName(),
		Owners:   t.OwnerNames(),
		Logo:     t.Logo,
	}
}

// IsSearchMatch reports whether query appears, case-insensitively, in the
// team name or in any owner's name. The query is matched literally.
func (t *Team) IsSearchMatch(query string) bool {
	return t.matches(searchPattern(query))
}

func (t *Team) matches(re *regexp.Regexp) bool {
	if re.MatchString(t.FullTeamName()) {
		return true
	}
	for _, o := range t.Owners {
		if re.MatchString(o.FullName()) {
			return true
		}
	}
	return false
}

func searchPattern(query string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}

// FindRosteredPlayer looks for the closest name match across every roster.
func FindRosteredPlayer(teams []*Team, name string) (Player, *Team, bool) {
	var (
		best      Player
		bestTeam  *Team
		bestScore float64
	)
	for _, t := range teams {
		p, score := bestPlayerMatch(t.Roster.Players, name)
		if score > bestScore {
			best, bestTeam, bestScore = p, t, score
		}
	}
	return best, bestTeam, bestTeam != nil
}
