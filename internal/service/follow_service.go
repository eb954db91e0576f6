package service

import (
	"meshitomo/internal/model"
	"meshitomo/internal/repository"
	"meshitomo/pkg/logger"

	"go.uber.org/zap"
)

// FollowStore is the persistence surface the follow service needs.
type FollowStore interface {
	Create(followerID, followedID int) error
	Delete(followerID, followedID int) error
	Exists(followerID, followedID int) (bool, error)
	Followed(followerID int) ([]model.UserSummary, error)
	Followers(followedID int) ([]model.UserSummary, error)
}

// FollowService maintains the directed follow graph, independent of the
// friendship relation.
type FollowService struct {
	store FollowStore
}

// NewFollowService creates a FollowService.
func NewFollowService(store FollowStore) *FollowService {
	return &FollowService{store: store}
}

// Follow adds a follower -> followed edge. Re-following an already followed
// user is rejected as a conflict, symmetrical with the friendship store.
func (s *FollowService) Follow(followerID, followedID int) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	if err := s.store.Create(followerID, followedID); err != nil {
		if repository.IsDuplicateEntry(err) {
			return ErrAlreadyFollowing
		}
		logger.Error("follow store: create failed",
			zap.Int("follower_id", followerID),
			zap.Int("followed_id", followedID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// Unfollow removes the edge; an absent edge is a no-op.
func (s *FollowService) Unfollow(followerID, followedID int) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	if err := s.store.Delete(followerID, followedID); err != nil {
		logger.Error("follow store: delete failed",
			zap.Int("follower_id", followerID),
			zap.Int("followed_id", followedID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// IsFollowing reports whether followerID follows followedID. A self-query is
// always false and never touches storage.
func (s *FollowService) IsFollowing(followerID, followedID int) (bool, error) {
	if followerID == followedID {
		return false, nil
	}

	exists, err := s.store.Exists(followerID, followedID)
	if err != nil {
		logger.Error("follow store: exists query failed",
			zap.Int("follower_id", followerID),
			zap.Int("followed_id", followedID),
			zap.Error(err),
		)
		return false, ErrStorage
	}
	return exists, nil
}

// Followed lists the users followerID follows.
func (s *FollowService) Followed(followerID int) ([]model.UserSummary, error) {
	users, err := s.store.Followed(followerID)
	if err != nil {
		logger.Error("follow store: followed list failed",
			zap.Int("follower_id", followerID),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	return users, nil
}

// Followers lists the users following followedID.
func (s *FollowService) Followers(followedID int) ([]model.UserSummary, error) {
	users, err := s.store.Followers(followedID)
	if err != nil {
		logger.Error("follow store: follower list failed",
			zap.Int("followed_id", followedID),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	return users, nil
}
