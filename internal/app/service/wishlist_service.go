package service

import (
	"context"

	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

type WishlistService struct {
	users    UserRepo
	games    GameRepo
	wishlist WishlistRepo
}

func NewWishlistService(users UserRepo, games GameRepo, wishlist WishlistRepo) *WishlistService {
	return &WishlistService{users: users, games: games, wishlist: wishlist}
}

// Add: find-or-create del juego y del usuario, y agrega la referencia.
// already=true si el juego ya estaba en la wishlist (sin mutación).
// Mismo orden que el flujo original: primero juego, después usuario.
func (s *WishlistService) Add(ctx context.Context, discordID, displayName, gameName string) (storage.Game, bool, error) {
	game, err := s.games.FindOrCreate(ctx, gameName)
	if err != nil {
		return storage.Game{}, false, err
	}
	user, err := s.users.FindOrCreate(ctx, discordID, displayName)
	if err != nil {
		return storage.Game{}, false, err
	}
	already, err := s.wishlist.Add(ctx, user.ID, game.ID)
	if err != nil {
		return storage.Game{}, false, err
	}
	return game, already, nil
}

// Page devuelve el slice [offset, offset+limit) y el total actual. Un offset
// pasado de largo (botón viejo) devuelve página vacía, nunca error.
func (s *WishlistService) Page(ctx context.Context, discordID, displayName string, offset, limit int) ([]storage.Game, int, error) {
	user, err := s.users.FindOrCreate(ctx, discordID, displayName)
	if err != nil {
		return nil, 0, err
	}
	return s.wishlist.Page(ctx, user.ID, offset, limit)
}

func (s *WishlistService) Game(ctx context.Context, gameID int64) (storage.Game, error) {
	return s.games.GetByID(ctx, gameID)
}

// Delete borra el juego y DESPUÉS saca la referencia de la wishlist, en dos
// pasos no atómicos: si el segundo falla queda una referencia colgante que
// la lectura tolera y el janitor barre. Si el juego ya no existía (doble
// click, delete concurrente) igual limpiamos la referencia y devolvemos
// ErrNotFound para que el caller avise "ya no está".
func (s *WishlistService) Delete(ctx context.Context, discordID, displayName string, gameID int64) (storage.Game, error) {
	user, err := s.users.FindOrCreate(ctx, discordID, displayName)
	if err != nil {
		return storage.Game{}, err
	}
	game, delErr := s.games.Delete(ctx, gameID)
	if delErr != nil && delErr != storage.ErrNotFound {
		return storage.Game{}, delErr
	}
	if err := s.wishlist.Remove(ctx, user.ID, gameID); err != nil {
		return storage.Game{}, err
	}
	if delErr == storage.ErrNotFound {
		return storage.Game{}, storage.ErrNotFound
	}
	return game, nil
}
