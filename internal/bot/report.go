package bot

import (
	"fmt"
	"strings"
	"time"

	"nba-tracker/internal/nba"
	"nba-tracker/internal/teams"
)

const (
	reportHeader = "**NBA Games:**"
	noGamesLine  = "No NBA games today.\n"
)

// providerTimezone is the zone the scoreboard's start times are quoted in.
const providerTimezone = "US/Eastern"

// FormatReport renders a day's games as one multi-line message in the
// guild's timezone. now supplies the date scheduled start times are pinned
// to; it should already be in loc.
func FormatReport(games []nba.Game, lineScores []nba.LineScore, records map[string]string, loc *time.Location, now time.Time) string {
	if len(games) == 0 {
		return noGamesLine
	}

	scores := make(map[string]int, len(lineScores))
	for _, lineScore := range lineScores {
		scores[lineScore.TeamID] = lineScore.Points
	}

	lines := make([]string, 0, len(games))
	for _, game := range games {
		lines = append(lines, formatGame(game, scores, records, loc, now))
	}

	return reportHeader + "\n\n" + strings.Join(lines, "\n")
}

func formatGame(game nba.Game, scores map[string]int, records map[string]string, loc *time.Location, now time.Time) string {
	homeName := teams.Name(game.HomeTeamID)
	awayName := teams.Name(game.AwayTeamID)
	homeEmoji := teams.Emoji(game.HomeTeamID)
	awayEmoji := teams.Emoji(game.AwayTeamID)
	homeRecord := lookupRecord(records, game.HomeTeamID)
	awayRecord := lookupRecord(records, game.AwayTeamID)
	homeScore := scores[game.HomeTeamID]
	awayScore := scores[game.AwayTeamID]

	switch game.StatusID {
	case nba.StatusFinal:
		switch {
		case homeScore > awayScore:
			return fmt.Sprintf("Final: %s **%s (%s)** %d - %d %s %s (%s)",
				homeEmoji, homeName, homeRecord, homeScore, awayScore, awayEmoji, awayName, awayRecord)
		case awayScore > homeScore:
			return fmt.Sprintf("Final: %s %s (%s) %d - %d %s **%s (%s)**",
				homeEmoji, homeName, homeRecord, homeScore, awayScore, awayEmoji, awayName, awayRecord)
		default:
			// Tied finals emphasize neither side.
			return fmt.Sprintf("Final: %s %s (%s) %d - %d %s %s (%s)",
				homeEmoji, homeName, homeRecord, homeScore, awayScore, awayEmoji, awayName, awayRecord)
		}
	case nba.StatusLive:
		return fmt.Sprintf("**LIVE** %s : %s %s (%s) **%d - %d** %s %s (%s)",
			strings.TrimSpace(game.StatusText), homeEmoji, homeName, homeRecord,
			homeScore, awayScore, awayEmoji, awayName, awayRecord)
	default:
		return fmt.Sprintf("%s : %s %s (%s) vs %s %s (%s)",
			formatTipOff(game.StatusText, loc, now), homeEmoji, homeName, homeRecord,
			awayEmoji, awayName, awayRecord)
	}
}

func lookupRecord(records map[string]string, teamID string) string {
	if record, ok := records[teamID]; ok && record != "" {
		return record
	}
	return "0-0"
}

// formatTipOff converts the provider's Eastern wall-clock start time to the
// guild's timezone, pinned to now's date. Status text that doesn't parse as
// a clock time (e.g. "1st Qtr") is passed through unchanged.
func formatTipOff(statusText string, loc *time.Location, now time.Time) string {
	parsed, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(statusText)))
	if err != nil {
		return statusText
	}

	eastern, err := time.LoadLocation(providerTimezone)
	if err != nil {
		return statusText
	}

	tipOff := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, eastern).In(loc)

	return tipOff.Format("03:04 PM") + " " + tipOff.Format("MST")
}
