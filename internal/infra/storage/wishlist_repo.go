package storage

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"
)

type WishlistRepo struct{ db *sql.DB }

func NewWishlistRepo(db *sql.DB) *WishlistRepo { return &WishlistRepo{db: db} }

// Add agrega la referencia al final de la wishlist. Si ya estaba no muta nada
// y devuelve already=true (RowsAffected == 0 por el DO NOTHING).
func (r *WishlistRepo) Add(ctx context.Context, userID, gameID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO wishlist_items (user_id, game_id)
VALUES ($1, $2)
ON CONFLICT (user_id, game_id) DO NOTHING
`, userID, gameID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n == 0, nil
}

func (r *WishlistRepo) Remove(ctx context.Context, userID, gameID int64) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM wishlist_items
 WHERE user_id = $1 AND game_id = $2
`, userID, gameID)
	return err
}

// Page devuelve el slice [offset, offset+limit) en orden de inserción y el
// total, en UNA sola query: total y página salen del mismo snapshot (si no,
// dos round trips pueden pisarse con un delete concurrente y descuadrar la
// paginación). Referencias colgantes (game borrado, ref todavía no) se
// filtran como si ya no estuvieran.
func (r *WishlistRepo) Page(ctx context.Context, userID int64, offset, limit int) ([]Game, int, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT t.total, g.id, g.name, g.created_at
  FROM (SELECT COUNT(*) AS total FROM wishlist_items WHERE user_id = $1) t
  LEFT JOIN LATERAL (
        SELECT id, game_id
          FROM wishlist_items
         WHERE user_id = $1
         ORDER BY id
        OFFSET $2 LIMIT $3
  ) w ON TRUE
  LEFT JOIN games g ON g.id = w.game_id
 ORDER BY w.id
`, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		out   []Game
		total int
	)
	for rows.Next() {
		var (
			id        sql.NullInt64
			name      sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&total, &id, &name, &createdAt); err != nil {
			return nil, 0, err
		}
		// fila sin juego: página vacía o referencia colgante
		if !id.Valid || !name.Valid {
			continue
		}
		out = append(out, Game{ID: id.Int64, Name: name.String, CreatedAt: createdAt.Time})
	}
	return out, total, rows.Err()
}

// DanglingGameIDs: game_ids referenciados en wishlists cuyo juego ya no
// existe (la ventana del delete en dos pasos). Los barre el janitor.
func (r *WishlistRepo) DanglingGameIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT w.game_id
  FROM wishlist_items w
  LEFT JOIN games g ON g.id = w.game_id
 WHERE g.id IS NULL
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *WishlistRepo) RemoveRefs(ctx context.Context, gameIDs []int64) (int64, error) {
	if len(gameIDs) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `
DELETE FROM wishlist_items
 WHERE game_id = ANY($1)
`, pq.Array(gameIDs))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
