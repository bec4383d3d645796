package response

import (
	"time"

	"selector/internal/core/domain/account"
)

type Account struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func (a *Account) FromDomainAccount(da account.Account) {
	a.ID = int64(da.ID)
	a.Username = string(da.Username)
	a.FirstName = da.FirstName
	a.LastName = da.LastName
	a.FullName = da.FullName()
	a.Email = string(da.Email)
	a.IsActive = da.IsActive
	a.IsStaff = da.IsStaff
	a.IsSuperuser = da.IsSuperuser
	a.DateJoined = da.DateJoined
	if da.LastLoginAt.IsPresent {
		a.LastLoginAt = &da.LastLoginAt.Value
	}
}
