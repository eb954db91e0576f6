package service

import (
	"errors"
	"testing"

	"meshitomo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFavoriteStore applies the store contract in memory: sync replaces the
// whole set, a diff deletes before it inserts, inserts ignore duplicates.
type fakeFavoriteStore struct {
	favorites map[int]map[int]bool // userID -> set of shopIDs
	calls     []string
	failWith  error
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{favorites: make(map[int]map[int]bool)}
}

func (f *fakeFavoriteStore) set(userID int) map[int]bool {
	if f.favorites[userID] == nil {
		f.favorites[userID] = make(map[int]bool)
	}
	return f.favorites[userID]
}

func (f *fakeFavoriteStore) SyncFavorites(userID int, shopIDs []int) error {
	f.calls = append(f.calls, "sync")
	if f.failWith != nil {
		return f.failWith
	}
	set := make(map[int]bool)
	for _, id := range shopIDs {
		set[id] = true
	}
	f.favorites[userID] = set
	return nil
}

func (f *fakeFavoriteStore) UpdateDiff(userID int, added, removed []int) error {
	f.calls = append(f.calls, "diff")
	if f.failWith != nil {
		return f.failWith
	}
	set := f.set(userID)
	for _, id := range removed {
		delete(set, id)
	}
	for _, id := range added {
		set[id] = true // insert-or-ignore
	}
	return nil
}

func (f *fakeFavoriteStore) ListByUser(userID int) ([]model.Shop, error) {
	f.calls = append(f.calls, "list")
	if f.failWith != nil {
		return nil, f.failWith
	}
	shops := make([]model.Shop, 0)
	for id := range f.set(userID) {
		shops = append(shops, model.Shop{ShopID: id})
	}
	return shops, nil
}

func (f *fakeFavoriteStore) Remove(userID, shopID int) error {
	f.calls = append(f.calls, "remove")
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.set(userID), shopID)
	return nil
}

func shopIDs(shops []model.Shop) []int {
	ids := make([]int, 0, len(shops))
	for _, s := range shops {
		ids = append(ids, s.ShopID)
	}
	return ids
}

func TestFavoriteSyncThenDiff(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	require.NoError(t, svc.Sync(42, []int{1, 2, 3}))
	require.NoError(t, svc.UpdateDiff(42, []int{4}, []int{2}))

	shops, err := svc.List(42)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 3, 4}, shopIDs(shops))
}

func TestFavoriteSyncIsIdempotent(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	require.NoError(t, svc.Sync(42, []int{1, 2}))
	require.NoError(t, svc.Sync(42, []int{1, 2}))

	shops, err := svc.List(42)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, shopIDs(shops))
}

func TestFavoriteSyncEmptyClearsAll(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	require.NoError(t, svc.Sync(42, []int{1, 2}))
	require.NoError(t, svc.Sync(42, nil))

	shops, err := svc.List(42)
	require.NoError(t, err)
	assert.Empty(t, shops)
}

func TestFavoriteDiffAddedWinsWhenInBothSets(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	require.NoError(t, svc.Sync(42, []int{7}))
	// 7 is both removed and added: delete-then-insert means it survives.
	require.NoError(t, svc.UpdateDiff(42, []int{7}, []int{7}))

	shops, err := svc.List(42)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{7}, shopIDs(shops))
}

func TestFavoriteDiffReAddIsNoOp(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	require.NoError(t, svc.Sync(42, []int{1}))
	require.NoError(t, svc.UpdateDiff(42, []int{1}, nil))

	shops, err := svc.List(42)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1}, shopIDs(shops))
}

func TestFavoriteDiffSplitEqualsCombined(t *testing.T) {
	combined := newFakeFavoriteStore()
	split := newFakeFavoriteStore()
	combinedSvc := NewFavoriteService(combined)
	splitSvc := NewFavoriteService(split)

	for _, svc := range []*FavoriteService{combinedSvc, splitSvc} {
		require.NoError(t, svc.Sync(42, []int{1, 2, 3}))
	}

	require.NoError(t, combinedSvc.UpdateDiff(42, []int{4, 5}, []int{2}))
	require.NoError(t, splitSvc.UpdateDiff(42, []int{4, 5}, nil))
	require.NoError(t, splitSvc.UpdateDiff(42, nil, []int{2}))

	combinedShops, err := combinedSvc.List(42)
	require.NoError(t, err)
	splitShops, err := splitSvc.List(42)
	require.NoError(t, err)
	assert.ElementsMatch(t, shopIDs(combinedShops), shopIDs(splitShops))
}

func TestFavoriteDiffEmptySkipsStorage(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	require.NoError(t, svc.UpdateDiff(42, nil, nil))
	assert.Empty(t, store.calls)
}

func TestFavoriteSyncRequiresUserID(t *testing.T) {
	store := newFakeFavoriteStore()
	svc := NewFavoriteService(store)

	assert.Error(t, svc.Sync(0, []int{1}))
	assert.Empty(t, store.calls)
}

func TestFavoriteStorageErrorsAreSanitized(t *testing.T) {
	store := newFakeFavoriteStore()
	store.failWith = errors.New("Error 1205: Lock wait timeout exceeded")
	svc := NewFavoriteService(store)

	err := svc.Sync(42, []int{1})
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotContains(t, err.Error(), "1205")

	err = svc.UpdateDiff(42, []int{1}, nil)
	assert.ErrorIs(t, err, ErrStorage)
}
