package registration

import "errors"

var (
	ErrTokenDoesNotExist = errors.New("register token does not exist")
	ErrEmptyToken        = errors.New("register token string is empty")
)
