package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	err error
}

func (f fakeReports) GetCurrentScores(ctx context.Context) (string, error) {
	return "scores", f.err
}

func (f fakeReports) GetStandings(ctx context.Context) (string, error) {
	return "standings", f.err
}

func (f fakeReports) GetMatchups(ctx context.Context) (string, error) {
	return "matchups", f.err
}

func (f fakeReports) GetPlayersToMonitor(ctx context.Context) (string, error) {
	return "monitor", f.err
}

func (f fakeReports) GetFinalScoreReport(ctx context.Context) (string, error) {
	return "trophies", f.err
}

func (f fakeReports) GetMondayNightCloseGames(ctx context.Context) (string, error) {
	return "close", f.err
}

func TestScheduler_RegistersJobs(t *testing.T) {
	s, err := NewScheduler(fakeReports{}, func(string) error { return nil }, "America/Chicago")
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Stop() })

	assert.Len(t, s.s.Jobs(), len(s.jobs()))
}

func TestScheduler_BadTimezoneFallsBack(t *testing.T) {
	s, err := NewScheduler(fakeReports{}, func(string) error { return nil }, "Mars/Olympus")
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestScheduler_Posts(t *testing.T) {
	var sent []string
	s, err := NewScheduler(fakeReports{}, func(text string) error {
		sent = append(sent, text)
		return nil
	}, "UTC")
	require.NoError(t, err)

	s.sendScoreboard()
	s.sendTrophies()
	s.sendCloseScores()
	s.sendStandings()
	s.sendMatchups()
	s.sendPlayersToMonitor()

	assert.Equal(t, []string{"scores", "trophies", "close", "standings", "matchups", "monitor"}, sent)
}

func TestScheduler_SkipsFailedReports(t *testing.T) {
	var sent []string
	s, err := NewScheduler(fakeReports{err: errors.New("no data")}, func(text string) error {
		sent = append(sent, text)
		return nil
	}, "UTC")
	require.NoError(t, err)

	s.sendScoreboard()
	assert.Empty(t, sent)
}
