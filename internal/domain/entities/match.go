package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// MatchStatus represents the state of a scheduled match
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "SCHEDULED"
	MatchStatusFinished  MatchStatus = "FINISHED"
	MatchStatusCancelled MatchStatus = "CANCELLED"
)

// Match represents a single fixture between two teams in a tournament
type Match struct {
	ID           uint        `json:"id"`
	TournamentID uint        `json:"tournamentId"`
	Round        int         `json:"round"`
	HomeTeamID   uint        `json:"homeTeamId"`
	AwayTeamID   uint        `json:"awayTeamId"`
	HomeScore    null.Int64  `json:"homeScore,omitempty"`
	AwayScore    null.Int64  `json:"awayScore,omitempty"`
	Status       MatchStatus `json:"status"`
	ScheduledAt  time.Time   `json:"scheduledAt"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ScheduleMatchInput represents input for scheduling a match
type ScheduleMatchInput struct {
	Round       int       `json:"round" binding:"required,min=1"`
	HomeTeamID  uint      `json:"homeTeamId" binding:"required"`
	AwayTeamID  uint      `json:"awayTeamId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

// ReportResultInput represents input for reporting a finished match
type ReportResultInput struct {
	HomeScore int `json:"homeScore" binding:"min=0"`
	AwayScore int `json:"awayScore" binding:"min=0"`
}
