package storage

import "time"

type User struct {
	ID        int64
	DiscordID string
	Name      string
	CreatedAt time.Time
}

type Game struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
