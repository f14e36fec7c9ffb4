package models

type LeagueMetadata struct {
	LeagueID    int
	Name        string
	CurrentWeek int
}

type TeamStanding struct {
	Rank          int
	TeamName      string
	Owners        string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	WinPercentage float64
	PlayoffSeed   int
}

type Trophy struct {
	Category string
	Team     string
	Value    float64
}

type FinalScore struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore float64
	AwayScore float64
}

type FinalScoreReport struct {
	Matchups []FinalScore
	Trophies []Trophy
}

type CloseGame struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore float64
	AwayScore float64
	Margin    float64
}
