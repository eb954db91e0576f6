package service

import (
	"errors"

	"meshitomo/internal/model"
	"meshitomo/pkg/logger"

	"go.uber.org/zap"
)

// FavoriteStore is the persistence surface the favorite service needs.
// Sync and UpdateDiff run inside a single transaction in the implementation.
type FavoriteStore interface {
	SyncFavorites(userID int, shopIDs []int) error
	UpdateDiff(userID int, added, removed []int) error
	ListByUser(userID int) ([]model.Shop, error)
	Remove(userID, shopID int) error
}

// FavoriteService maintains a user's favorite shops with two update modes:
// full replacement (Sync) and incremental diff (UpdateDiff).
type FavoriteService struct {
	store FavoriteStore
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(store FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// Sync replaces the user's entire favorite set with shopIDs. Repeated calls
// with the same set are stable; an empty set clears all favorites.
func (s *FavoriteService) Sync(userID int, shopIDs []int) error {
	if userID <= 0 {
		return errors.New("user id is required")
	}

	if err := s.store.SyncFavorites(userID, shopIDs); err != nil {
		logger.Error("favorite store: sync failed",
			zap.Int("user_id", userID),
			zap.Int("count", len(shopIDs)),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// UpdateDiff applies an added/removed delta. Both slices may be empty; a
// fully empty diff never touches storage. A shop id appearing in both slices
// ends up favorited (the store deletes before it inserts).
func (s *FavoriteService) UpdateDiff(userID int, added, removed []int) error {
	if userID <= 0 {
		return errors.New("user id is required")
	}
	if len(added) == 0 && len(removed) == 0 {
		return nil
	}

	if err := s.store.UpdateDiff(userID, added, removed); err != nil {
		logger.Error("favorite store: diff update failed",
			zap.Int("user_id", userID),
			zap.Ints("added", added),
			zap.Ints("removed", removed),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// List returns the user's favorite shops, most recently added first.
func (s *FavoriteService) List(userID int) ([]model.Shop, error) {
	shops, err := s.store.ListByUser(userID)
	if err != nil {
		logger.Error("favorite store: list failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	return shops, nil
}

// Remove deletes one favorite; removing an absent pair succeeds silently.
func (s *FavoriteService) Remove(userID, shopID int) error {
	if err := s.store.Remove(userID, shopID); err != nil {
		logger.Error("favorite store: remove failed",
			zap.Int("user_id", userID),
			zap.Int("shop_id", shopID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}
