package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type message struct {
	key   string
	value string
}

type fakeProducer struct {
	mu       sync.Mutex
	messages []message
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message{key: string(key), value: string(value)})
	return nil
}

func (p *fakeProducer) sent() []message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]message(nil), p.messages...)
}

type fakeUserRepo struct {
	users map[string]*domain.User
	next  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.UniqueID]; ok {
		return nil, domain.ErrDuplicateUser
	}
	r.next++
	user.ID = r.next
	cp := *user
	r.users[user.UniqueID] = &cp
	return user, nil
}

func (r *fakeUserRepo) FindUserByUniqueID(uniqueID string) (*domain.User, error) {
	u, ok := r.users[uniqueID]
	if !ok {
		return nil, fmt.Errorf("find user %q: %w", uniqueID, gorm.ErrRecordNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) SaveUser(user *domain.User) error {
	cp := *user
	r.users[user.UniqueID] = &cp
	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newSession(t *testing.T, kv repository.KVRepository, id string) *Session {
	t.Helper()
	s, err := NewSessionManager(kv, money("1000.00")).Start(id)
	require.NoError(t, err)
	return s
}
