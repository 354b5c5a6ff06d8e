// Package nba is a read-only client for the stats.nba.com endpoints the bot
// needs: the daily scoreboard and the league standings.
package nba

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://stats.nba.com"

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates and returns a new Client for the NBA stats API with an
// explicit request timeout and a conservative rate limit.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: time.Second * 15,
		},
		limiter: rate.NewLimiter(1, 5), // 1 request per second, burst of 5
	}
}

// GamesForDate fetches the scoreboard for one calendar date: the day's games
// and, in parallel, each team's cumulative points. A date with no games
// returns two empty slices, not an error. Results are never cached.
func (c *Client) GamesForDate(date time.Time) ([]Game, []LineScore, error) {
	url := fmt.Sprintf("%s/stats/scoreboardv2?DayOffset=0&GameDate=%s&LeagueID=00",
		c.baseURL, date.Format("2006-01-02"))

	resp, err := c.makeRequest(url)
	if err != nil {
		return nil, nil, &FetchError{Endpoint: "scoreboardv2", Err: err}
	}
	defer resp.Body.Close()

	var scoreboard response
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		return nil, nil, &FetchError{Endpoint: "scoreboardv2", Err: fmt.Errorf("error decoding response: %w", err)}
	}

	games, err := parseGameHeaders(&scoreboard)
	if err != nil {
		return nil, nil, &FetchError{Endpoint: "scoreboardv2", Err: err}
	}

	scores, err := parseLineScores(&scoreboard)
	if err != nil {
		return nil, nil, &FetchError{Endpoint: "scoreboardv2", Err: err}
	}

	return games, scores, nil
}

// TeamRecords fetches the current league standings and returns each team's
// win-loss record as a "W-L" string keyed by team id.
func (c *Client) TeamRecords() (map[string]string, error) {
	url := fmt.Sprintf("%s/stats/leaguestandingsv3?LeagueID=00&Season=%s&SeasonType=Regular+Season",
		c.baseURL, seasonForDate(time.Now()))

	resp, err := c.makeRequest(url)
	if err != nil {
		return nil, &FetchError{Endpoint: "leaguestandingsv3", Err: err}
	}
	defer resp.Body.Close()

	var standings response
	if err := json.NewDecoder(resp.Body).Decode(&standings); err != nil {
		return nil, &FetchError{Endpoint: "leaguestandingsv3", Err: fmt.Errorf("error decoding response: %w", err)}
	}

	records, err := parseStandings(&standings)
	if err != nil {
		return nil, &FetchError{Endpoint: "leaguestandingsv3", Err: err}
	}

	return records, nil
}

func parseGameHeaders(scoreboard *response) ([]Game, error) {
	table, err := scoreboard.table("GameHeader")
	if err != nil {
		return nil, err
	}

	homeCol, err := table.column("HOME_TEAM_ID")
	if err != nil {
		return nil, err
	}
	awayCol, err := table.column("VISITOR_TEAM_ID")
	if err != nil {
		return nil, err
	}
	statusCol, err := table.column("GAME_STATUS_ID")
	if err != nil {
		return nil, err
	}
	statusTextCol, err := table.column("GAME_STATUS_TEXT")
	if err != nil {
		return nil, err
	}

	rows, err := table.rows()
	if err != nil {
		return nil, err
	}

	games := make([]Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, Game{
			HomeTeamID: asString(row[homeCol]),
			AwayTeamID: asString(row[awayCol]),
			StatusID:   asInt(row[statusCol]),
			StatusText: asString(row[statusTextCol]),
		})
	}

	return games, nil
}

func parseLineScores(scoreboard *response) ([]LineScore, error) {
	table, err := scoreboard.table("LineScore")
	if err != nil {
		return nil, err
	}

	teamCol, err := table.column("TEAM_ID")
	if err != nil {
		return nil, err
	}
	pointsCol, err := table.column("PTS")
	if err != nil {
		return nil, err
	}

	rows, err := table.rows()
	if err != nil {
		return nil, err
	}

	scores := make([]LineScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, LineScore{
			TeamID: asString(row[teamCol]),
			Points: asInt(row[pointsCol]),
		})
	}

	return scores, nil
}

func parseStandings(standings *response) (map[string]string, error) {
	table, err := standings.table("Standings")
	if err != nil {
		return nil, err
	}

	teamCol, err := table.column("TeamID")
	if err != nil {
		return nil, err
	}
	winsCol, err := table.column("WINS")
	if err != nil {
		return nil, err
	}
	lossesCol, err := table.column("LOSSES")
	if err != nil {
		return nil, err
	}

	rows, err := table.rows()
	if err != nil {
		return nil, err
	}

	records := make(map[string]string, len(rows))
	for _, row := range rows {
		records[asString(row[teamCol])] = fmt.Sprintf("%d-%d", asInt(row[winsCol]), asInt(row[lossesCol]))
	}

	return records, nil
}

// seasonForDate formats the season identifier the standings endpoint
// expects, e.g. "2024-25". NBA seasons start in October.
func seasonForDate(t time.Time) string {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
