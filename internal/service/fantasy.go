package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/omarshaarawi/scorebot/internal/api/espn"
	"github.com/omarshaarawi/scorebot/internal/league"
	"github.com/omarshaarawi/scorebot/internal/models"
)

const closeGameMargin = 16

type LeagueAPI interface {
	GetLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error)
	GetTeams(ctx context.Context, year, scoringPeriod int) ([]*league.Team, error)
	GetScoreboard(ctx context.Context, year, scoringPeriod int) (*league.Scoreboard, error)
	GetNFLTeams(ctx context.Context, year int) (*league.NFLTeamDirectory, error)
}

type FantasyService struct {
	api      LeagueAPI
	year     int
	location *time.Location
}

func NewFantasyService(api LeagueAPI, year int, location *time.Location) *FantasyService {
	if location == nil {
		location = time.UTC
	}
	return &FantasyService{api: api, year: year, location: location}
}

func (s *FantasyService) GetCurrentWeek(ctx context.Context) (int, error) {
	metadata, err := s.api.GetLeagueMetadata(ctx, s.year)
	if err != nil {
		return 0, err
	}

	slog.Info("Current week", "week", metadata.CurrentWeek)
	return metadata.CurrentWeek, nil
}

func (s *FantasyService) weekOrCurrent(ctx context.Context, week int) (int, error) {
	if week > 0 {
		return week, nil
	}
	week, err := s.GetCurrentWeek(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching current week: %w", err)
	}
	return week, nil
}

// userMessage turns recoverable lookup errors into chat text. Other errors
// are returned unchanged.
func (s *FantasyService) userMessage(err error, query string) (string, error) {
	var ambiguous *league.AmbiguousTeamError
	switch {
	case errors.Is(err, espn.ErrNoData):
		return fmt.Sprintf("🤷 Cannot find data for %d.", s.year), nil
	case errors.Is(err, league.ErrTeamNotFound):
		return fmt.Sprintf("🔍 Cannot find a team matching '%s'.", query), nil
	case errors.As(err, &ambiguous):
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("🤔 '%s' matches several teams:\n", query))
		for _, t := range ambiguous.Candidates {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", t.FullTeamName(), t.OwnerNames()))
		}
		return sb.String(), nil
	default:
		return "", err
	}
}

// ScoreData resolves identifier against the week's scoreboard.
func (s *FantasyService) ScoreData(ctx context.Context, identifier string, week int) ([]league.ScorePair, error) {
	week, err := s.weekOrCurrent(ctx, week)
	if err != nil {
		return nil, err
	}

	sb, err := s.api.GetScoreboard(ctx, s.year, week)
	if err != nil {
		return nil, err
	}
	return sb.ScoreData(identifier)
}

func (s *FantasyService) GetScore(ctx context.Context, query string, week int) (string, error) {
	week, err := s.weekOrCurrent(ctx, week)
	if err != nil {
		return s.userMessage(err, query)
	}

	board, err := s.api.GetScoreboard(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, query)
	}

	pairs, err := board.ScoreData(query)
	if err != nil {
		return s.userMessage(err, query)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d*\n\n", board.ScoringPeriod()))
	if len(pairs) == 0 {
		sb.WriteString("No matchup this week.")
		return sb.String(), nil
	}

	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("*%s* (%s) %.1f\n", p.Team.TeamName, p.Team.Owners, p.Team.Score))
		sb.WriteString(fmt.Sprintf("*%s* (%s) %.1f\n\n", p.Opponent.TeamName, p.Opponent.Owners, p.Opponent.Score))
	}
	return sb.String(), nil
}

func (s *FantasyService) GetTeams(ctx context.Context) (string, error) {
	teams, err := s.api.GetTeams(ctx, s.year, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	var sb strings.Builder
	sb.WriteString("👥 *Teams*\n\n")
	for _, t := range teams {
		sb.WriteString(fmt.Sprintf("*%s* - %s\n", t.FullTeamName(), t.OwnerNames()))
	}
	return sb.String(), nil
}

func (s *FantasyService) GetStandings(ctx context.Context) (string, error) {
	teams, err := s.api.GetTeams(ctx, s.year, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	standings := rankStandings(teams)

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", team.Rank, team.TeamName, team.Owners))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		if team.PlayoffSeed > 0 {
			sb.WriteString(fmt.Sprintf("   Playoff Seed: %d\n", team.PlayoffSeed))
		}
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}

	return sb.String(), nil
}

func rankStandings(teams []*league.Team) []models.TeamStanding {
	standings := make([]models.TeamStanding, len(teams))
	for i, t := range teams {
		overall := t.Record.Overall
		standings[i] = models.TeamStanding{
			TeamName:      t.FullTeamName(),
			Owners:        t.OwnerNames(),
			Wins:          overall.Wins,
			Losses:        overall.Losses,
			Ties:          overall.Ties,
			PointsFor:     overall.PointsFor,
			PointsAgainst: overall.PointsAgainst,
			WinPercentage: overall.Percentage,
			PlayoffSeed:   t.PlayoffSeed,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

func (s *FantasyService) GetCurrentScores(ctx context.Context) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	sb, err := s.api.GetScoreboard(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, "")
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("🏈 *Week %d Current Scores*\n\n", week))
	for _, m := range sb.Matchups() {
		out.WriteString(fmt.Sprintf("*%s* vs *%s*\n", m.Home.TeamName, m.Away.TeamName))
		out.WriteString(fmt.Sprintf("Current: %.1f - %.1f\n", m.Home.Score, m.Away.Score))
		out.WriteString(fmt.Sprintf("Projected: %.1f - %.1f\n", m.Home.Projected, m.Away.Projected))
		if isCompleted(m) {
			out.WriteString("(Final)\n")
		}
		out.WriteString("\n")
	}
	return out.String(), nil
}

func (s *FantasyService) GetMatchups(ctx context.Context) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	sb, err := s.api.GetScoreboard(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, "")
	}

	matchups := sb.Matchups()
	slog.Info("Matchups", "matchups", len(matchups))

	var out strings.Builder
	out.WriteString(fmt.Sprintf("🏈 *Week %d Matchups*\n\n", week))
	for _, m := range matchups {
		out.WriteString(fmt.Sprintf("*%s* (%s)\n", m.Home.TeamName, m.Home.Owners))
		out.WriteString("vs\n")
		out.WriteString(fmt.Sprintf("*%s* (%s)\n", m.Away.TeamName, m.Away.Owners))
		out.WriteString(fmt.Sprintf("Projected: %.1f - %.1f\n\n", m.Home.Projected, m.Away.Projected))
	}
	return out.String(), nil
}

func isCompleted(m league.MatchupResult) bool {
	return m.Winner != "" && m.Winner != "UNDECIDED"
}

func (s *FantasyService) GetTeamRoster(ctx context.Context, query string) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	teams, err := s.api.GetTeams(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, query)
	}

	team, err := findTeam(teams, query)
	if err != nil {
		return s.userMessage(err, query)
	}

	directory, err := s.api.GetNFLTeams(ctx, s.year)
	if err != nil {
		slog.Warn("Roster without bye weeks", "error", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Roster*\n\n", team.FullTeamName()))

	sb.WriteString("*Starting Lineup:*\n")
	for _, p := range team.Roster.Starters() {
		sb.WriteString(rosterLine(p, directory, week))
	}

	sb.WriteString("\n*Bench:*\n")
	for _, p := range team.Roster.Bench() {
		sb.WriteString(rosterLine(p, directory, week))
	}

	return sb.String(), nil
}

func findTeam(teams []*league.Team, query string) (*league.Team, error) {
	board := league.NewScoreboard(teams, nil, 0)
	res := board.Resolve(query)
	if err := res.Err(query); err != nil {
		return nil, err
	}
	if t := board.Team(res.TeamID); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w %s", league.ErrTeamNotFound, query)
}

var injuryAbbr = map[string]string{
	"QUESTIONABLE": "Q",
	"DOUBTFUL":     "D",
	"OUT":          "O",
	"SUSPENSION":   "SSPD",
}

func rosterLine(p league.Player, directory *league.NFLTeamDirectory, week int) string {
	pointsStr := fmt.Sprintf("%.1f pts", p.ScoreForWeek)
	switch {
	case p.LineupSlot == "IR" || p.InjuryStatus == "INJURY_RESERVE":
		pointsStr = "IR"
	case directory != nil && onBye(directory, p, week):
		pointsStr = "BYE"
	}

	injuryStr := ""
	if p.IsInjured() {
		if abbr, ok := injuryAbbr[p.InjuryStatus]; ok {
			injuryStr = fmt.Sprintf(" (%s)", abbr)
		}
	}

	return fmt.Sprintf("▫️ %s %s%s - %s\n", p.LineupSlot, p.FullName, injuryStr, pointsStr)
}

func onBye(directory *league.NFLTeamDirectory, p league.Player, week int) bool {
	pt, ok := directory.TeamByPlayer(p)
	return ok && pt.ByeWeek == week
}

func (s *FantasyService) GetPlayersToMonitor(ctx context.Context) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	teams, err := s.api.GetTeams(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, "")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🚑 *Week %d Players to Monitor*\n\n", week))

	found := false
	for _, t := range teams {
		var monitored []league.Player
		for _, p := range t.Roster.InjuredPlayers() {
			if p.IsStarter() {
				monitored = append(monitored, p)
			}
		}
		if len(monitored) == 0 {
			continue
		}

		found = true
		sb.WriteString(fmt.Sprintf("*%s:*\n", t.FullTeamName()))
		for _, p := range monitored {
			sb.WriteString(fmt.Sprintf("  • %s %s - %s\n", p.LineupSlot, p.FullName, p.InjuryStatus))
		}
		sb.WriteString("\n")
	}

	if !found {
		sb.WriteString("No players to monitor at this time.")
	}
	return sb.String(), nil
}

func (s *FantasyService) WhoHas(ctx context.Context, playerName string) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	teams, err := s.api.GetTeams(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, "")
	}

	p, team, ok := league.FindRosteredPlayer(teams, playerName)
	if !ok {
		return fmt.Sprintf("🔍 No rostered player found matching '%s'.", playerName), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*%s\n", p.FullName, s.playerTag(ctx, p)))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("*%s* (%s)\n", team.FullTeamName(), team.OwnerNames()))
	if p.IsStarter() {
		sb.WriteString("Starting\n")
	} else {
		sb.WriteString(fmt.Sprintf("%s\n", p.LineupSlot))
	}
	sb.WriteString(fmt.Sprintf("\n%.1f pts", p.ScoreForWeek))
	sb.WriteString(fmt.Sprintf("\n%0.1f%% Rostered", p.PercentOwned))

	return sb.String(), nil
}

// playerTag renders " (RB - CHI)". Parts that cannot be resolved are left out.
func (s *FantasyService) playerTag(ctx context.Context, p league.Player) string {
	var parts []string
	if p.Position != "" {
		parts = append(parts, p.Position)
	}

	directory, err := s.api.GetNFLTeams(ctx, s.year)
	if err != nil {
		slog.Warn("Player card without NFL team", "player", p.FullName, "error", err)
	} else if pt, ok := directory.TeamByPlayer(p); ok {
		parts = append(parts, pt.Abbrev)
	}

	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, " - ") + ")"
}

func (s *FantasyService) GetKickoff(ctx context.Context, nflTeam string, week int) (string, error) {
	week, err := s.weekOrCurrent(ctx, week)
	if err != nil {
		return s.userMessage(err, nflTeam)
	}

	directory, err := s.api.GetNFLTeams(ctx, s.year)
	if err != nil {
		return s.userMessage(err, nflTeam)
	}

	kickoff, ok := directory.MatchupTime(nflTeam, week)
	if !ok {
		return fmt.Sprintf("🔍 Cannot find a week %d game for '%s'.", week, nflTeam), nil
	}

	team, _ := directory.Team(nflTeam)
	return fmt.Sprintf("🏟 *%s* kick off week %d at %s",
		team.FullName(), week, kickoff.In(s.location).Format("Mon Jan 2, 3:04 PM MST")), nil
}

func (s *FantasyService) GetByeWeek(ctx context.Context, nflTeam string) (string, error) {
	directory, err := s.api.GetNFLTeams(ctx, s.year)
	if err != nil {
		return s.userMessage(err, nflTeam)
	}

	week, ok := directory.ByeWeek(nflTeam)
	if !ok {
		return fmt.Sprintf("🔍 Cannot find a bye week for '%s'.", nflTeam), nil
	}

	team, _ := directory.Team(nflTeam)
	return fmt.Sprintf("😴 *%s* are on bye in week %d", team.FullName(), week), nil
}

func (s *FantasyService) GetFinalScoreReport(ctx context.Context) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	sb, err := s.api.GetScoreboard(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, "")
	}

	report := processScores(sb.Matchups())
	return formatFinalScoreReport(report), nil
}

func processScores(matchups []league.MatchupResult) models.FinalScoreReport {
	var report models.FinalScoreReport
	report.Matchups = make([]models.FinalScore, len(matchups))

	highScore := -math.MaxFloat64
	lowScore := math.MaxFloat64
	biggestWin := -math.MaxFloat64
	closestWin := math.MaxFloat64
	var highScoreTeam, lowScoreTeam, biggestWinTeam, closestWinTeam string

	for i, m := range matchups {
		homeTeam, awayTeam := m.Home.TeamName, m.Away.TeamName
		homeScore, awayScore := m.Home.Score, m.Away.Score

		report.Matchups[i] = models.FinalScore{
			HomeTeam:  homeTeam,
			AwayTeam:  awayTeam,
			HomeScore: homeScore,
			AwayScore: awayScore,
		}

		if homeScore > highScore {
			highScore, highScoreTeam = homeScore, homeTeam
		}
		if awayScore > highScore {
			highScore, highScoreTeam = awayScore, awayTeam
		}

		if homeScore < lowScore {
			lowScore, lowScoreTeam = homeScore, homeTeam
		}
		if awayScore < lowScore {
			lowScore, lowScoreTeam = awayScore, awayTeam
		}

		winner := awayTeam
		if homeScore > awayScore {
			winner = homeTeam
		}
		margin := math.Abs(homeScore - awayScore)
		if margin > biggestWin {
			biggestWin, biggestWinTeam = margin, winner
		}
		if margin < closestWin {
			closestWin, closestWinTeam = margin, winner
		}
	}

	if len(matchups) == 0 {
		return report
	}

	report.Trophies = []models.Trophy{
		{Category: "High Score", Team: highScoreTeam, Value: highScore},
		{Category: "Low Score", Team: lowScoreTeam, Value: lowScore},
		{Category: "Biggest Win", Team: biggestWinTeam, Value: biggestWin},
		{Category: "Closest Win", Team: closestWinTeam, Value: closestWin},
	}
	return report
}

func formatFinalScoreReport(report models.FinalScoreReport) string {
	var sb strings.Builder

	sb.WriteString("📊 *Final Scores:*\n\n")

	sort.Slice(report.Matchups, func(i, j int) bool {
		totalScoreI := report.Matchups[i].HomeScore + report.Matchups[i].AwayScore
		totalScoreJ := report.Matchups[j].HomeScore + report.Matchups[j].AwayScore
		return totalScoreI > totalScoreJ
	})

	for _, m := range report.Matchups {
		sb.WriteString(fmt.Sprintf("%s %.2f - %.2f %s\n", m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam))
	}

	if len(report.Trophies) == 0 {
		return sb.String()
	}

	sb.WriteString("\n🏆 *Trophies:*\n")
	for _, t := range report.Trophies {
		switch t.Category {
		case "High Score":
			sb.WriteString(fmt.Sprintf("Highest Score: %s (%.2f)\n", t.Team, t.Value))
		case "Low Score":
			sb.WriteString(fmt.Sprintf("Lowest Score: %s (%.2f)\n", t.Team, t.Value))
		case "Biggest Win":
			sb.WriteString(fmt.Sprintf("Biggest Win: %s (Margin: %.2f)\n", t.Team, t.Value))
		case "Closest Win":
			sb.WriteString(fmt.Sprintf("Closest Win: %s (Margin: %.2f)\n", t.Team, t.Value))
		}
	}

	return sb.String()
}

func (s *FantasyService) GetMondayNightCloseGames(ctx context.Context) (string, error) {
	week, err := s.weekOrCurrent(ctx, 0)
	if err != nil {
		return s.userMessage(err, "")
	}

	sb, err := s.api.GetScoreboard(ctx, s.year, week)
	if err != nil {
		return s.userMessage(err, "")
	}

	return formatMondayNightCloseGames(findCloseGames(sb.Matchups())), nil
}

func findCloseGames(matchups []league.MatchupResult) []models.CloseGame {
	var closeGames []models.CloseGame

	for _, m := range matchups {
		margin := math.Abs(m.Home.Score - m.Away.Score)
		if margin <= closeGameMargin {
			closeGames = append(closeGames, models.CloseGame{
				HomeTeam:  m.Home.TeamName,
				AwayTeam:  m.Away.TeamName,
				HomeScore: m.Home.Score,
				AwayScore: m.Away.Score,
				Margin:    margin,
			})
		}
	}

	sort.Slice(closeGames, func(i, j int) bool {
		return closeGames[i].Margin < closeGames[j].Margin
	})

	return closeGames
}

func formatMondayNightCloseGames(closeGames []models.CloseGame) string {
	var sb strings.Builder

	sb.WriteString("🏈 *Monday Night Watch List*\n\n")

	if len(closeGames) == 0 {
		sb.WriteString("No close games this week. All outcomes are likely decided.")
		return sb.String()
	}

	for _, game := range closeGames {
		sb.WriteString(fmt.Sprintf("%s %.2f - %.2f %s (Margin: %.2f)\n",
			game.HomeTeam, game.HomeScore, game.AwayScore, game.AwayTeam, game.Margin))
	}

	return sb.String()
}
