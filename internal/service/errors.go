package service

import "errors"

// Error taxonomy. Validation and conflict errors are surfaced verbatim to
// the handler; raw storage errors are logged with component context and
// replaced by ErrStorage so driver messages never reach the client.
var (
	ErrSelfFriendship     = errors.New("cannot create a friendship with yourself")
	ErrAlreadyFriends     = errors.New("already friends")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrEmailTaken         = errors.New("this email address is already registered")
	ErrIDCapacity         = errors.New("could not issue a unique user id, please try again")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrStorage            = errors.New("storage error")
)
