package storage

import (
	"context"
	"database/sql"
	"errors"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

var ErrNotFound = errors.New("not found")

// FindOrCreate: upsert por discord_id. El DO UPDATE refresca el display name
// y nos deja usar RETURNING tanto en insert como en conflicto.
func (r *UserRepo) FindOrCreate(ctx context.Context, discordID, name string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (discord_id, name)
VALUES ($1, $2)
ON CONFLICT (discord_id) DO UPDATE SET
  name = EXCLUDED.name
RETURNING id, discord_id, name, created_at
`, discordID, name).Scan(&u.ID, &u.DiscordID, &u.Name, &u.CreatedAt)
	return u, err
}

func (r *UserRepo) GetByDiscordID(ctx context.Context, discordID string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
SELECT id, discord_id, name, created_at
  FROM users
 WHERE discord_id = $1
`, discordID).Scan(&u.ID, &u.DiscordID, &u.Name, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}
