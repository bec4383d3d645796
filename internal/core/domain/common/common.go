package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// Some is a shorthand for NewOptional(value, true).
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

// ValueOr returns the wrapped value or fallback when it is absent.
func (p Optional[T]) ValueOr(fallback T) T {
	if !p.IsPresent {
		return fallback
	}
	return p.Value
}

type Email string

// NewEmail lowercases the domain part only, the local part is case sensitive.
func NewEmail(rawEmail string) Email {
	rawEmail = strings.TrimSpace(rawEmail)
	at := strings.LastIndex(rawEmail, "@")
	if at < 0 {
		return Email(rawEmail)
	}
	return Email(rawEmail[:at+1] + strings.ToLower(rawEmail[at+1:]))
}

func (e Email) IsEmpty() bool {
	return e == ""
}
