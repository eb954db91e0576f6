package service

import (
	"meshitomo/internal/repository"
	"meshitomo/pkg/logger"

	"go.uber.org/zap"
)

// FriendshipStore is the persistence surface the friendship service needs.
// Ids passed down are always canonical: small < large.
type FriendshipStore interface {
	Create(small, large int) error
	Delete(small, large int) error
	Exists(small, large int) (bool, error)
	FriendIDs(userID int) ([]int, error)
}

// FriendshipService maintains the symmetric friend relation. Every read and
// write goes through OrderedPair first, so a friendship between X and Y is
// stored and queried identically no matter which side initiates.
type FriendshipService struct {
	store FriendshipStore
}

// NewFriendshipService creates a FriendshipService.
func NewFriendshipService(store FriendshipStore) *FriendshipService {
	return &FriendshipService{store: store}
}

// OrderedPair canonicalizes two user ids into (min, max).
// Self-friendship is rejected here, before any SQL is issued, mirroring the
// database CHECK constraint.
func OrderedPair(a, b int) (small, large int, err error) {
	if a == b {
		return 0, 0, ErrSelfFriendship
	}
	if a < b {
		return a, b, nil
	}
	return b, a, nil
}

// Create establishes the friendship between a and b.
func (s *FriendshipService) Create(a, b int) error {
	small, large, err := OrderedPair(a, b)
	if err != nil {
		return err
	}

	if err := s.store.Create(small, large); err != nil {
		if repository.IsDuplicateEntry(err) {
			return ErrAlreadyFriends
		}
		logger.Error("friendship store: create failed",
			zap.Int("user_id_small", small),
			zap.Int("user_id_large", large),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// Delete removes the friendship between a and b; absent pairs are a no-op.
func (s *FriendshipService) Delete(a, b int) error {
	small, large, err := OrderedPair(a, b)
	if err != nil {
		return err
	}

	if err := s.store.Delete(small, large); err != nil {
		logger.Error("friendship store: delete failed",
			zap.Int("user_id_small", small),
			zap.Int("user_id_large", large),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// Exists reports whether a and b are friends. Unlike Create, a == b is
// answered as "not friends" rather than rejected: an existence check is a
// safe query.
func (s *FriendshipService) Exists(a, b int) (bool, error) {
	if a == b {
		return false, nil
	}

	small, large, err := OrderedPair(a, b)
	if err != nil {
		return false, err
	}

	exists, err := s.store.Exists(small, large)
	if err != nil {
		logger.Error("friendship store: exists query failed",
			zap.Int("user_id_small", small),
			zap.Int("user_id_large", large),
			zap.Error(err),
		)
		return false, ErrStorage
	}
	return exists, nil
}

// Friends returns the ids of all friends of userID.
func (s *FriendshipService) Friends(userID int) ([]int, error) {
	friendIDs, err := s.store.FriendIDs(userID)
	if err != nil {
		logger.Error("friendship store: friend lookup failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	return friendIDs, nil
}
