package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nba-tracker/internal/nba"
)

func pacific(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("US/Pacific")
	require.NoError(t, err)
	return loc
}

func TestNextTrigger(t *testing.T) {
	loc := pacific(t)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"before the trigger",
			time.Date(2025, time.January, 15, 9, 55, 0, 0, loc),
			time.Date(2025, time.January, 15, 10, 0, 0, 0, loc),
		},
		{
			"after the trigger",
			time.Date(2025, time.January, 15, 10, 5, 0, 0, loc),
			time.Date(2025, time.January, 16, 10, 0, 0, 0, loc),
		},
		{
			"exactly at the trigger",
			time.Date(2025, time.January, 15, 10, 0, 0, 0, loc),
			time.Date(2025, time.January, 16, 10, 0, 0, 0, loc),
		},
		{
			"just after midnight",
			time.Date(2025, time.January, 15, 0, 1, 0, 0, loc),
			time.Date(2025, time.January, 15, 10, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTrigger(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextTrigger(%s) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestPublishDailyReportFanOut(t *testing.T) {
	provider := &stubProvider{
		games:   []nba.Game{game(nba.StatusFinal, "Final")},
		scores:  scores(120, 110),
		records: testRecords,
	}
	b := newTestBot(t, provider)

	b.store.EnsureGuild("guild-a")
	b.store.EnsureGuild("guild-b")
	b.store.EnsureGuild("guild-c")
	b.store.SetReportChannel("guild-a", "channel-1")
	b.store.SetReportChannel("guild-b", "channel-2")
	// guild-c never designated a channel and must be skipped.

	var sent []string
	b.send = func(channelID, content string) error {
		sent = append(sent, channelID)
		if channelID == "channel-1" {
			return errors.New("delivery failed")
		}
		return nil
	}

	b.PublishDailyReport(time.Now())

	// A failure for one guild must not block the others.
	assert.ElementsMatch(t, []string{"channel-1", "channel-2"}, sent)
}

func TestPublishDailyReportProviderFailure(t *testing.T) {
	provider := &stubProvider{gamesErr: &nba.FetchError{Endpoint: "scoreboardv2", Err: errors.New("down")}}
	b := newTestBot(t, provider)

	b.store.EnsureGuild("guild-a")
	b.store.SetReportChannel("guild-a", "channel-1")

	var sent []string
	b.send = func(channelID, content string) error {
		sent = append(sent, channelID)
		return nil
	}

	b.PublishDailyReport(time.Now())

	assert.Empty(t, sent, "a failed games fetch should skip the whole fan-out")
}
