// Package profile defines the records and errors shared by the StarCraft II scrapers.
package profile

import (
	"errors"
	"time"
)

// Common errors returned by the scrapers.
var (
	ErrInvalidReference   = errors.New("invalid profile reference")
	ErrUnresolvableRegion = errors.New("unresolvable region")
	ErrUnknownHost        = errors.New("unknown battle.net host")
	ErrProfileNotFound    = errors.New("invalid profile")
	ErrNotImplemented     = errors.New("scrape not implemented")
	ErrUnexpectedMarkup   = errors.New("unexpected page markup")
)

// League is one ladder placement for an account.
type League struct {
	ID       string `json:"id,omitempty"`
	Season   string `json:"season"`
	Size     string `json:"size"`
	Random   bool   `json:"random"`
	League   string `json:"league"`
	Division string `json:"division"`
	BnetID   string `json:"bnet_id"`
	Name     string `json:"name"`
}

// LeagueLink points at a league page discovered on a profile.
type LeagueLink struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Href string `json:"href"`
}

// SwarmLevels holds per-race levels.
type SwarmLevels struct {
	Zerg    int `json:"zerg"`
	Protoss int `json:"protoss"`
	Terran  int `json:"terran"`
}

// Profile represents the data extracted from an account's profile page.
//
// A plain profile scrape fills LeagueLinks. A full scrape replaces them with
// the scraped Leagues, in the same order.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Profile struct {
	// Identity
	BnetID string `json:"bnet_id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Region string `json:"region"`

	// Header
	AchievementPoints int    `json:"achievement_points"`
	Portrait          string `json:"portrait,omitempty"`

	SwarmLevels     SwarmLevels `json:"swarm_levels"`
	CareerGames     int         `json:"career_games"`
	GamesThisSeason int         `json:"games_this_season"`
	MostPlayed      string      `json:"most_played,omitempty"`

	HighestSoloLeague string `json:"highest_solo_league,omitempty"`
	HighestTeamLeague string `json:"highest_team_league,omitempty"`

	LeagueLinks []LeagueLink `json:"league_links,omitempty"`
	Leagues     []League     `json:"leagues,omitempty"`
}

// Achievement is one recently earned achievement.
type Achievement struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Earned      string    `json:"earned,omitempty"`
	EarnedAt    time.Time `json:"earned_at,omitzero"`
}

// Achievements is the data on an account's achievements page.
type Achievements struct {
	BnetID   string         `json:"bnet_id"`
	Name     string         `json:"name"`
	Recent   []Achievement  `json:"recent,omitempty"`
	Progress map[string]int `json:"progress,omitempty"`
	Showcase []string       `json:"showcase,omitempty"`
}

// Outcome is the result of a single match.
type Outcome string

// Match outcomes.
const (
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
	OutcomeUnknown Outcome = "unknown"
)

// Match is one row of an account's match history.
type Match struct {
	Map     string  `json:"map"`
	Type    string  `json:"type"`
	Outcome Outcome `json:"outcome"`
	Date    string  `json:"date,omitempty"`
}

// MatchHistory is the data on an account's match history page.
type MatchHistory struct {
	BnetID  string  `json:"bnet_id"`
	Name    string  `json:"name"`
	Matches []Match `json:"matches,omitempty"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
}

// ServerStatus reports whether a region's game service is online.
type ServerStatus struct {
	Region string `json:"region"`
	Online bool   `json:"online"`
}
