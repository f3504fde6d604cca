package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/wishlist-bot/internal/app/service"
	"github.com/jose-valero/wishlist-bot/internal/infra/storage"
)

type fakeUsers struct{ calls int }

func (f *fakeUsers) FindOrCreate(_ context.Context, discordID, name string) (storage.User, error) {
	f.calls++
	return storage.User{ID: 1, DiscordID: discordID, Name: name}, nil
}

type fakeGames struct {
	games   map[int64]storage.Game
	deleted []int64
}

func (f *fakeGames) FindOrCreate(_ context.Context, name string) (storage.Game, error) {
	for _, g := range f.games {
		if g.Name == name {
			return g, nil
		}
	}
	g := storage.Game{ID: int64(len(f.games) + 1), Name: name}
	f.games[g.ID] = g
	return g, nil
}

func (f *fakeGames) GetByID(_ context.Context, id int64) (storage.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return storage.Game{}, storage.ErrNotFound
	}
	return g, nil
}

func (f *fakeGames) Delete(_ context.Context, id int64) (storage.Game, error) {
	f.deleted = append(f.deleted, id)
	g, ok := f.games[id]
	if !ok {
		return storage.Game{}, storage.ErrNotFound
	}
	delete(f.games, id)
	return g, nil
}

type fakeWishlist struct {
	refs    []int64
	removed []int64
}

func (f *fakeWishlist) Add(_ context.Context, _, gameID int64) (bool, error) {
	for _, id := range f.refs {
		if id == gameID {
			return true, nil
		}
	}
	f.refs = append(f.refs, gameID)
	return false, nil
}

func (f *fakeWishlist) Remove(_ context.Context, _, gameID int64) error {
	f.removed = append(f.removed, gameID)
	out := f.refs[:0]
	for _, id := range f.refs {
		if id != gameID {
			out = append(out, id)
		}
	}
	f.refs = out
	return nil
}

func (f *fakeWishlist) Page(_ context.Context, _ int64, offset, limit int) ([]storage.Game, int, error) {
	return nil, len(f.refs), nil
}

func newService() (*service.WishlistService, *fakeGames, *fakeWishlist) {
	games := &fakeGames{games: map[int64]storage.Game{}}
	wl := &fakeWishlist{}
	return service.NewWishlistService(&fakeUsers{}, games, wl), games, wl
}

func TestAddIsIdempotentOnGameName(t *testing.T) {
	svc, games, _ := newService()

	g1, already, err := svc.Add(context.Background(), "1", "Ana", "Hades")
	require.NoError(t, err)
	assert.False(t, already)

	g2, already, err := svc.Add(context.Background(), "1", "Ana", "Hades")
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, g1.ID, g2.ID)
	assert.Len(t, games.games, 1)
}

func TestDeleteRunsBothSteps(t *testing.T) {
	svc, games, wl := newService()
	g, _, err := svc.Add(context.Background(), "1", "Ana", "Hades")
	require.NoError(t, err)

	got, err := svc.Delete(context.Background(), "1", "Ana", g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hades", got.Name)
	// primero el juego, después la referencia
	assert.Equal(t, []int64{g.ID}, games.deleted)
	assert.Equal(t, []int64{g.ID}, wl.removed)
	assert.Empty(t, wl.refs)
}

func TestDeleteMissingGameStillCleansRef(t *testing.T) {
	svc, _, wl := newService()
	wl.refs = []int64{42} // referencia colgante: el juego ya no existe

	_, err := svc.Delete(context.Background(), "1", "Ana", 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, []int64{42}, wl.removed)
	assert.Empty(t, wl.refs)
}

func TestPageReportsTotal(t *testing.T) {
	svc, _, wl := newService()
	wl.refs = []int64{1, 2, 3}

	_, total, err := svc.Page(context.Background(), "1", "Ana", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
