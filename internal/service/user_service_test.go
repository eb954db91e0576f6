package service

import (
	"testing"
	"time"

	"meshitomo/config"
	"meshitomo/internal/model"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	users         map[int]*model.User
	emails        map[string]bool
	createErrs    []error // popped per Create call
	idExistsHits  int     // first N IDExists calls answer true
	idCheckCalls  int
	searchPattern string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  make(map[int]*model.User),
		emails: make(map[string]bool),
	}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.users[user.UserID] = user
	f.emails[user.Email] = true
	return nil
}

func (f *fakeUserStore) GetByID(userID int) (*model.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserStore) GetByEmailOrID(identifier string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) EmailTaken(email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeUserStore) IDExists(userID int) (bool, error) {
	f.idCheckCalls++
	if f.idCheckCalls <= f.idExistsHits {
		return true, nil
	}
	_, ok := f.users[userID]
	return ok, nil
}

func (f *fakeUserStore) UpdateUserName(userID int, userName string) error {
	f.users[userID].UserName = userName
	return nil
}

func (f *fakeUserStore) UpdateEmail(userID int, email string) error {
	if f.emails[email] {
		return gorm.ErrDuplicatedKey
	}
	f.users[userID].Email = email
	return nil
}

func (f *fakeUserStore) UpdatePassword(userID int, passwordHash string) error {
	f.users[userID].Password = passwordHash
	return nil
}

func (f *fakeUserStore) UpdateProfilePhotoID(userID int, photoID *int) error {
	f.users[userID].ProfilePhotoID = photoID
	return nil
}

func (f *fakeUserStore) SearchByKeyword(pattern string) ([]model.UserSummary, error) {
	f.searchPattern = pattern
	return []model.UserSummary{}, nil
}

func (f *fakeUserStore) IconAddress(photoID int) (string, error) {
	if photoID == 999 {
		return "/img/icons/default.png", nil
	}
	return "", nil
}

func newTestUserService(store UserStore) *UserService {
	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "test",
	})
	return NewUserService(store, jwtSvc)
}

func TestRegisterIssuesEightDigitID(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	user, token, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.GreaterOrEqual(t, user.UserID, 10000000)
	assert.LessOrEqual(t, user.UserID, 99999999)
	assert.NotEmpty(t, token)
	assert.True(t, password.Verify("hunter2!", user.Password))
	require.NotNil(t, user.ProfilePhotoID)
	assert.Equal(t, 999, *user.ProfilePhotoID)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	store := newFakeUserStore()
	store.emails["taro@example.com"] = true
	svc := newTestUserService(store)

	_, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRetriesOnIDCollision(t *testing.T) {
	store := newFakeUserStore()
	store.idExistsHits = 3 // first three candidates collide
	svc := newTestUserService(store)

	user, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 4, store.idCheckCalls)
}

func TestRegisterRetriesOnInsertRace(t *testing.T) {
	store := newFakeUserStore()
	// The existence check passes but a concurrent insert wins the id.
	store.createErrs = []error{gorm.ErrDuplicatedKey, nil}
	svc := newTestUserService(store)

	user, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestRegisterIDCapacityExhausted(t *testing.T) {
	store := newFakeUserStore()
	store.idExistsHits = 5 // every attempt collides
	svc := newTestUserService(store)

	_, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	assert.ErrorIs(t, err, ErrIDCapacity)
	assert.Empty(t, store.users)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, _, err := svc.Register("", "taro@example.com", "pw")
	assert.Error(t, err)
	_, _, err = svc.Register("Taro", "", "pw")
	assert.Error(t, err)
	_, _, err = svc.Register("Taro", "taro@example.com", "")
	assert.Error(t, err)
}

func TestLoginHappyPath(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)

	user, token, err := svc.Login("taro@example.com", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "Taro", user.UserName)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)

	_, _, err = svc.Login("taro@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, _, err := svc.Login("nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateEmailConflict(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	user, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)
	store.emails["jiro@example.com"] = true

	assert.ErrorIs(t, svc.UpdateEmail(user.UserID, "jiro@example.com"), ErrEmailTaken)
}

func TestUpdatePasswordVerifiesCurrent(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	user, _, err := svc.Register("Taro", "taro@example.com", "hunter2!")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdatePassword(user.UserID, "wrong", "newpass!"), ErrInvalidCredentials)

	require.NoError(t, svc.UpdatePassword(user.UserID, "hunter2!", "newpass!"))
	assert.True(t, password.Verify("newpass!", store.users[user.UserID].Password))
}

func TestSearchUsersBlankKeywordSkipsStorage(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	users, err := svc.SearchUsers("   ")
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Empty(t, store.searchPattern)
}

func TestSearchUsersWrapsKeywordInWildcards(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	_, err := svc.SearchUsers(" taro ")
	require.NoError(t, err)
	assert.Equal(t, "%taro%", store.searchPattern)
}

func TestIconAddressNilPhotoID(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	address, err := svc.IconAddress(nil)
	require.NoError(t, err)
	assert.Empty(t, address)
}
