package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeFriendshipStore keeps pairs in memory and records the arguments of the
// last write so canonical ordering can be asserted.
type fakeFriendshipStore struct {
	pairs       map[[2]int]bool
	lastSmall   int
	lastLarge   int
	createErr   error
	queryErr    error
	existsCalls int
}

func newFakeFriendshipStore() *fakeFriendshipStore {
	return &fakeFriendshipStore{pairs: make(map[[2]int]bool)}
}

func (f *fakeFriendshipStore) Create(small, large int) error {
	f.lastSmall, f.lastLarge = small, large
	if f.createErr != nil {
		return f.createErr
	}
	key := [2]int{small, large}
	if f.pairs[key] {
		return gorm.ErrDuplicatedKey
	}
	f.pairs[key] = true
	return nil
}

func (f *fakeFriendshipStore) Delete(small, large int) error {
	f.lastSmall, f.lastLarge = small, large
	delete(f.pairs, [2]int{small, large})
	return nil
}

func (f *fakeFriendshipStore) Exists(small, large int) (bool, error) {
	f.existsCalls++
	if f.queryErr != nil {
		return false, f.queryErr
	}
	return f.pairs[[2]int{small, large}], nil
}

func (f *fakeFriendshipStore) FriendIDs(userID int) ([]int, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	ids := make([]int, 0)
	for key := range f.pairs {
		switch userID {
		case key[0]:
			ids = append(ids, key[1])
		case key[1]:
			ids = append(ids, key[0])
		}
	}
	return ids, nil
}

func TestOrderedPair(t *testing.T) {
	small, large, err := OrderedPair(42, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, small)
	assert.Equal(t, 42, large)

	small, large, err = OrderedPair(7, 42)
	require.NoError(t, err)
	assert.Equal(t, 7, small)
	assert.Equal(t, 42, large)
}

func TestOrderedPairRejectsSelf(t *testing.T) {
	_, _, err := OrderedPair(5, 5)
	assert.ErrorIs(t, err, ErrSelfFriendship)
}

func TestFriendshipCreateCanonicalizes(t *testing.T) {
	store := newFakeFriendshipStore()
	svc := NewFriendshipService(store)

	require.NoError(t, svc.Create(42, 7))
	assert.Equal(t, 7, store.lastSmall)
	assert.Equal(t, 42, store.lastLarge)

	// Same pair from the other side is the same row.
	assert.ErrorIs(t, svc.Create(7, 42), ErrAlreadyFriends)
}

func TestFriendshipCreateSelfNoWrite(t *testing.T) {
	store := newFakeFriendshipStore()
	svc := NewFriendshipService(store)

	assert.ErrorIs(t, svc.Create(9, 9), ErrSelfFriendship)
	assert.Empty(t, store.pairs)
}

func TestFriendshipExistsOrderIndependent(t *testing.T) {
	store := newFakeFriendshipStore()
	svc := NewFriendshipService(store)

	require.NoError(t, svc.Create(5, 9))

	exists, err := svc.Exists(9, 5)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFriendshipExistsSelfIsFalseWithoutQuery(t *testing.T) {
	store := newFakeFriendshipStore()
	svc := NewFriendshipService(store)

	exists, err := svc.Exists(3, 3)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Zero(t, store.existsCalls)
}

func TestFriendshipCreateDeleteCheck(t *testing.T) {
	store := newFakeFriendshipStore()
	svc := NewFriendshipService(store)

	require.NoError(t, svc.Create(5, 9))
	require.NoError(t, svc.Delete(9, 5))

	exists, err := svc.Exists(5, 9)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFriendshipFriendsYieldsCounterpart(t *testing.T) {
	store := newFakeFriendshipStore()
	svc := NewFriendshipService(store)

	require.NoError(t, svc.Create(10, 20))
	require.NoError(t, svc.Create(30, 10))

	friends, err := svc.Friends(10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{20, 30}, friends)
	assert.NotContains(t, friends, 10)
}

func TestFriendshipStorageErrorsAreSanitized(t *testing.T) {
	store := newFakeFriendshipStore()
	store.createErr = errors.New("driver: connection reset")
	svc := NewFriendshipService(store)

	err := svc.Create(1, 2)
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotContains(t, err.Error(), "driver")
}
