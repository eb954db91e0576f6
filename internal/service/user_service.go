package service

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"meshitomo/internal/model"
	"meshitomo/internal/repository"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/logger"
	"meshitomo/pkg/password"

	"go.uber.org/zap"
)

const (
	// Externally visible user ids are 8-digit integers.
	userIDMin = 10000000
	userIDMax = 99999999

	// maxIDAttempts bounds the generate-check-insert loop at registration.
	maxIDAttempts = 5

	// defaultProfilePhotoID is the placeholder icon assigned at registration.
	defaultProfilePhotoID = 999
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	Create(user *model.User) error
	GetByID(userID int) (*model.User, error)
	GetByEmailOrID(identifier string) (*model.User, error)
	EmailTaken(email string) (bool, error)
	IDExists(userID int) (bool, error)
	UpdateUserName(userID int, userName string) error
	UpdateEmail(userID int, email string) error
	UpdatePassword(userID int, passwordHash string) error
	UpdateProfilePhotoID(userID int, photoID *int) error
	SearchByKeyword(pattern string) ([]model.UserSummary, error)
	IconAddress(photoID int) (string, error)
}

// UserService owns account registration, authentication and profile updates.
type UserService struct {
	store      UserStore
	jwtService *jwt.JWTService
}

// NewUserService creates a UserService.
func NewUserService(store UserStore, jwtService *jwt.JWTService) *UserService {
	return &UserService{store: store, jwtService: jwtService}
}

// generateUserID draws a random 8-digit id.
func generateUserID() int {
	return rand.IntN(userIDMax-userIDMin+1) + userIDMin
}

// Register creates an account and issues an access token. The user id is a
// random 8-digit integer: each attempt re-checks existence before insert, a
// duplicate-key race on insert counts as a collision and retries, and
// exhausting the attempt budget is reported as ErrIDCapacity rather than a
// generic failure.
func (s *UserService) Register(userName, email, plainPassword string) (*model.User, string, error) {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)
	if userName == "" || email == "" || plainPassword == "" {
		return nil, "", errors.New("name, email and password are required")
	}

	taken, err := s.store.EmailTaken(email)
	if err != nil {
		logger.Error("user store: email check failed", zap.Error(err))
		return nil, "", ErrStorage
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}

	photoID := defaultProfilePhotoID
	var user *model.User
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate := generateUserID()

		exists, err := s.store.IDExists(candidate)
		if err != nil {
			logger.Error("user store: id check failed",
				zap.Int("candidate", candidate),
				zap.Error(err),
			)
			return nil, "", ErrStorage
		}
		if exists {
			continue
		}

		u := &model.User{
			UserID:         candidate,
			UserName:       userName,
			Email:          email,
			Password:       hash,
			ProfilePhotoID: &photoID,
		}
		if err := s.store.Create(u); err != nil {
			// A concurrent registration can win the id between the
			// existence check and the insert; draw a new id and retry.
			if repository.IsDuplicateEntry(err) {
				continue
			}
			logger.Error("user store: create failed",
				zap.Int("candidate", candidate),
				zap.Error(err),
			)
			return nil, "", ErrStorage
		}

		user = u
		break
	}

	if user == nil {
		logger.Error("user store: id generation exhausted",
			zap.Int("attempts", maxIDAttempts),
		)
		return nil, "", ErrIDCapacity
	}

	token, err := s.jwtService.GenerateToken(
		strconv.Itoa(user.UserID),
		map[string]interface{}{"user_name": user.UserName},
	)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and issues an access token. The identifier
// may be the email address or the numeric user id.
func (s *UserService) Login(identifier, plainPassword string) (*model.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plainPassword == "" {
		return nil, "", errors.New("identifier and password are required")
	}

	u, err := s.store.GetByEmailOrID(identifier)
	if err != nil {
		logger.Error("user store: login lookup failed", zap.Error(err))
		return nil, "", ErrStorage
	}
	if u == nil || !password.Verify(plainPassword, u.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(
		strconv.Itoa(u.UserID),
		map[string]interface{}{"user_name": u.UserName},
	)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetByID returns the user or ErrUserNotFound.
func (s *UserService) GetByID(userID int) (*model.User, error) {
	u, err := s.store.GetByID(userID)
	if err != nil {
		logger.Error("user store: lookup failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateUserName sets the display name.
func (s *UserService) UpdateUserName(userID int, userName string) error {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return errors.New("user name is required")
	}

	if err := s.store.UpdateUserName(userID, userName); err != nil {
		logger.Error("user store: name update failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// UpdateEmail sets the email address. The unique constraint is the backstop
// against a concurrent registration of the same address.
func (s *UserService) UpdateEmail(userID int, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}

	if err := s.store.UpdateEmail(userID, email); err != nil {
		if repository.IsDuplicateEntry(err) {
			return ErrEmailTaken
		}
		logger.Error("user store: email update failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// UpdatePassword replaces the password after verifying the current one.
func (s *UserService) UpdatePassword(userID int, currentPassword, newPassword string) error {
	if newPassword == "" {
		return errors.New("new password is required")
	}

	u, err := s.store.GetByID(userID)
	if err != nil {
		logger.Error("user store: lookup failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return ErrStorage
	}
	if u == nil {
		return ErrUserNotFound
	}

	if !password.Verify(currentPassword, u.Password) {
		return ErrInvalidCredentials
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.store.UpdatePassword(userID, hash); err != nil {
		logger.Error("user store: password update failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// UpdateProfilePhoto sets or clears the profile photo reference.
func (s *UserService) UpdateProfilePhoto(userID int, photoID *int) error {
	if err := s.store.UpdateProfilePhotoID(userID, photoID); err != nil {
		logger.Error("user store: profile photo update failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return ErrStorage
	}
	return nil
}

// SearchUsers finds users by partial name or id match for the friend-add
// screen. A blank keyword returns an empty result without touching storage.
func (s *UserService) SearchUsers(keyword string) ([]model.UserSummary, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []model.UserSummary{}, nil
	}

	users, err := s.store.SearchByKeyword("%" + keyword + "%")
	if err != nil {
		logger.Error("user store: search failed",
			zap.String("keyword", keyword),
			zap.Error(err),
		)
		return nil, ErrStorage
	}
	return users, nil
}

// IconAddress resolves a profile photo id to its address, "" when unset.
func (s *UserService) IconAddress(photoID *int) (string, error) {
	if photoID == nil {
		return "", nil
	}

	address, err := s.store.IconAddress(*photoID)
	if err != nil {
		logger.Error("user store: icon lookup failed",
			zap.Int("profile_photo_id", *photoID),
			zap.Error(err),
		)
		return "", ErrStorage
	}
	return address, nil
}
