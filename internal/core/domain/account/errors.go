package account

import "errors"

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrAccountDoesNotExist   = errors.New("account does not exist")
)
