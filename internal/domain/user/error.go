package user

import "errors"

var (
	ErrDuplicateID       = errors.New("id already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrUnknownUser       = errors.New("user not found")
	ErrSelfFriend        = errors.New("cannot add yourself")
	ErrAlreadyFriend     = errors.New("already friends")
	ErrNotAuthenticated  = errors.New("not authenticated")
)
