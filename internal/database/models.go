package database

import "time"

// CommandEvent records one handled command. Category is the percentile
// classification for roll commands and empty otherwise.
type CommandEvent struct {
	ID        int64     `db:"id"`
	Command   string    `db:"command"`
	ChatID    int64     `db:"chat_id"`
	UserID    int64     `db:"user_id"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

// CommandCount is the number of events of one command.
type CommandCount struct {
	Command string `db:"command"`
	Count   int    `db:"count"`
}
