package registration

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"selector/internal/core/domain/account"
)

type FakeRepository struct {
	Tokens         []RegisterToken
	ReturnError    bool
	MarkSentCalled int
	lock           sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Tokens: make([]RegisterToken, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (t RegisterToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create register token for account %d", input.AccountID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = RegisterToken{
		ID:        ID(len(r.Tokens) + 1),
		AccountID: input.AccountID,
		Token:     input.Token,
		Method:    input.Method,
		IssuedAt:  input.IssuedAt,
		Sent:      input.Sent,
	}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakeRepository) MarkSent(ctx context.Context, id ID) (t RegisterToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not mark register token %d as sent", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.MarkSentCalled++
	for ix := range r.Tokens {
		if r.Tokens[ix].ID == id {
			r.Tokens[ix].Sent = true
			return r.Tokens[ix], nil
		}
	}
	return t, ErrTokenDoesNotExist
}

func (r *FakeRepository) ListUnsent(ctx context.Context, accountID account.ID) ([]RegisterToken, error) {
	tokens, err := r.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	unsent := make([]RegisterToken, 0, len(tokens))
	for _, t := range tokens {
		if !t.Sent {
			unsent = append(unsent, t)
		}
	}
	return unsent, nil
}

// ListByAccount returns every token of the account, sent or not.
func (r *FakeRepository) ListByAccount(ctx context.Context, accountID account.ID) ([]RegisterToken, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list register tokens of account %d", accountID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make([]RegisterToken, 0)
	for _, t := range r.Tokens {
		if t.AccountID == accountID {
			tokens = append(tokens, t)
		}
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].ID < tokens[j].ID })
	return tokens, nil
}

// FakeTokenGenerator returns Prefix followed by a sequence number.
type FakeTokenGenerator struct {
	Prefix string
	Calls  int
	lock   sync.Mutex
}

func NewFakeTokenGenerator(prefix string) *FakeTokenGenerator {
	return &FakeTokenGenerator{Prefix: prefix}
}

func (g *FakeTokenGenerator) GenerateRegisterToken() Token {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Calls++
	return Token(fmt.Sprintf("%s%d", g.Prefix, g.Calls))
}

type FakeRenderRecord struct {
	Name string
	Data map[string]interface{}
}

type FakeRenderer struct {
	Rendered    []FakeRenderRecord
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{}
}

func (r *FakeRenderer) Render(name string, data map[string]interface{}) (string, error) {
	if r.ReturnError {
		return "", fmt.Errorf("could not render template %s", name)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Rendered = append(r.Rendered, FakeRenderRecord{Name: name, Data: data})

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return name + ": " + strings.Join(parts, ", "), nil
}

type FakeDispatchScheduler struct {
	Scheduled   []account.ID
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeDispatchScheduler() *FakeDispatchScheduler {
	return &FakeDispatchScheduler{}
}

func (s *FakeDispatchScheduler) ScheduleDispatch(ctx context.Context, accountID account.ID) error {
	if s.ReturnError {
		return fmt.Errorf("could not schedule dispatch for account %d", accountID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Scheduled = append(s.Scheduled, accountID)
	return nil
}
