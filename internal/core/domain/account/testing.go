package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakeRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input.Username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if existing.Username == input.Username {
			return a, ErrUsernameAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a = Account{
		ID:           maxID + 1,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		IsActive:     input.IsActive,
		IsStaff:      input.IsStaff,
		IsSuperuser:  input.IsSuperuser,
		DateJoined:   input.DateJoined,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByUsername(ctx context.Context, username Username) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %s", username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not update account %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID != input.ID {
			continue
		}
		if input.DoIsActiveUpdate {
			r.Accounts[ix].IsActive = input.IsActive
		}
		return r.Accounts[ix], nil
	}
	return a, ErrAccountDoesNotExist
}

type FakeMailer struct {
	Sent        []Mail
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeMailer() *FakeMailer {
	return &FakeMailer{}
}

func (m *FakeMailer) SendMail(ctx context.Context, mail Mail) error {
	if m.ReturnError {
		return fmt.Errorf("could not send mail %q", mail.Subject)
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Sent = append(m.Sent, mail)
	return nil
}

func (m *FakeMailer) SentCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.Sent)
}

func (m *FakeMailer) LastSent() Mail {
	m.lock.Lock()
	defer m.lock.Unlock()
	l := len(m.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return m.Sent[l-1]
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}
