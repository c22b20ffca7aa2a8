package models

import "time"

// ScheduleEvent is one scheduled or played game from a team's season
// schedule. Date carries calendar precision only (UTC midnight); the
// selector compares dates inclusively, not instants.
type ScheduleEvent struct {
	GameID    string    `json:"game_id"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}
