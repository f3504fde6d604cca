package storage

import (
	"context"
	"database/sql"
)

type GameRepo struct{ db *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

// FindOrCreate: upsert por nombre (match exacto, case sensitive).
// Garantiza un solo Game por nombre; dos add simultaneos caen en el mismo id.
func (r *GameRepo) FindOrCreate(ctx context.Context, name string) (Game, error) {
	var g Game
	err := r.db.QueryRowContext(ctx, `
INSERT INTO games (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET
  name = EXCLUDED.name
RETURNING id, name, created_at
`, name).Scan(&g.ID, &g.Name, &g.CreatedAt)
	return g, err
}

func (r *GameRepo) GetByID(ctx context.Context, id int64) (Game, error) {
	var g Game
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, created_at
  FROM games
 WHERE id = $1
`, id).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return Game{}, ErrNotFound
	}
	return g, err
}

// Delete borra el registro y lo devuelve. NO toca wishlists: el caller tiene
// que llamar aparte a WishlistRepo.Remove (protocolo de dos pasos).
func (r *GameRepo) Delete(ctx context.Context, id int64) (Game, error) {
	var g Game
	err := r.db.QueryRowContext(ctx, `
DELETE FROM games
 WHERE id = $1
RETURNING id, name, created_at
`, id).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return Game{}, ErrNotFound
	}
	return g, err
}
