package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ReportService produces the messages posted on a schedule.
type ReportService interface {
	GetCurrentScores(ctx context.Context) (string, error)
	GetStandings(ctx context.Context) (string, error)
	GetMatchups(ctx context.Context) (string, error)
	GetPlayersToMonitor(ctx context.Context) (string, error)
	GetFinalScoreReport(ctx context.Context) (string, error)
	GetMondayNightCloseGames(ctx context.Context) (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	service     ReportService
	sendMessage func(string) error
	ctx         context.Context
}

func NewScheduler(service ReportService, sendMessage func(string) error, timezone string) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		service:     service,
		sendMessage: sendMessage,
		ctx:         context.Background(),
	}, nil
}

type weeklyJob struct {
	name  string
	days  []time.Weekday
	times []gocron.AtTime
	task  func()
}

// Times are in the scheduler's location (America/Chicago by default).
func (s *Scheduler) jobs() []weeklyJob {
	at := func(h, m uint) gocron.AtTime { return gocron.NewAtTime(h, m, 0) }

	return []weeklyJob{
		{"close scores", []time.Weekday{time.Monday}, []gocron.AtTime{at(17, 30)}, s.sendCloseScores},
		{"scoreboard", []time.Weekday{time.Monday, time.Tuesday, time.Friday}, []gocron.AtTime{at(7, 30)}, s.sendScoreboard},
		{"trophies", []time.Weekday{time.Tuesday}, []gocron.AtTime{at(7, 30)}, s.sendTrophies},
		{"standings", []time.Weekday{time.Wednesday}, []gocron.AtTime{at(7, 30)}, s.sendStandings},
		{"matchups", []time.Weekday{time.Thursday}, []gocron.AtTime{at(18, 30)}, s.sendMatchups},
		{"players to monitor", []time.Weekday{time.Sunday}, []gocron.AtTime{at(7, 30)}, s.sendPlayersToMonitor},
		{"Sunday scoreboard", []time.Weekday{time.Sunday}, []gocron.AtTime{at(15, 0), at(19, 0)}, s.sendScoreboard},
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx

	for _, j := range s.jobs() {
		_, err := s.s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(j.days[0], j.days[1:]...), gocron.NewAtTimes(j.times[0], j.times[1:]...)),
			gocron.NewTask(j.task),
			gocron.WithName(j.name),
		)
		if err != nil {
			return fmt.Errorf("failed to create %s job: %w", j.name, err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) post(name string, report func(context.Context) (string, error)) {
	text, err := report(s.ctx)
	if err != nil {
		slog.Error("Failed to build report", "report", name, "error", err)
		return
	}
	if err := s.sendMessage(text); err != nil {
		slog.Error("Failed to send report", "report", name, "error", err)
	}
}

func (s *Scheduler) sendCloseScores() {
	s.post("close games", s.service.GetMondayNightCloseGames)
}

func (s *Scheduler) sendScoreboard() {
	s.post("current scores", s.service.GetCurrentScores)
}

func (s *Scheduler) sendTrophies() {
	s.post("final score report", s.service.GetFinalScoreReport)
}

func (s *Scheduler) sendStandings() {
	s.post("standings", s.service.GetStandings)
}

func (s *Scheduler) sendMatchups() {
	s.post("matchups", s.service.GetMatchups)
}

func (s *Scheduler) sendPlayersToMonitor() {
	s.post("players to monitor", s.service.GetPlayersToMonitor)
}
