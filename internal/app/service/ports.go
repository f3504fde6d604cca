package service

import (
	"context"

	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

// Lo implementa internal/infra/storage.UserRepo
type UserRepo interface {
	FindOrCreate(ctx context.Context, discordID, name string) (storage.User, error)
}

// Lo implementa internal/infra/storage.GameRepo
type GameRepo interface {
	FindOrCreate(ctx context.Context, name string) (storage.Game, error)
	GetByID(ctx context.Context, id int64) (storage.Game, error)
	Delete(ctx context.Context, id int64) (storage.Game, error)
}

// Lo implementa internal/infra/storage.WishlistRepo
type WishlistRepo interface {
	Add(ctx context.Context, userID, gameID int64) (bool, error)
	Remove(ctx context.Context, userID, gameID int64) error
	Page(ctx context.Context, userID int64, offset, limit int) ([]storage.Game, int, error)
}
