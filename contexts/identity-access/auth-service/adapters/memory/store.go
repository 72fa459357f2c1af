package memory

import (
	"context"
	"sync"
	"time"

	"bookstore/contexts/identity-access/auth-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu      sync.RWMutex
	byEmail map[string]ports.User
}

func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]ports.User),
	}
}

func (s *Store) CreateUser(ctx context.Context, user ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byEmail[user.Email] = user
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (ports.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return ports.User{}, false, nil
	}
	return user, true, nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.UserRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
