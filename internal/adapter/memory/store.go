// Package memory keeps users, campaigns and contributions in process memory.
// It backs STORE_DRIVER=memory and the handler tests; data is lost on exit.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/domain"
)

// Store holds all records behind one lock so a campaign rename and the
// contributions following it change together.
type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	users         map[string]domain.User
	campaigns     map[string]domain.Campaign
	contributions map[string]domain.Contribution
	seq           int64
	order         map[string]int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:           func() time.Time { return time.Now().UTC() },
		users:         map[string]domain.User{},
		campaigns:     map[string]domain.Campaign{},
		contributions: map[string]domain.Contribution{},
		order:         map[string]int64{},
	}
}

// Users returns the store as a domain.UserRepository.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Campaigns returns the store as a domain.CampaignRepository.
func (s *Store) Campaigns() *CampaignRepository { return &CampaignRepository{s: s} }

// Contributions returns the store as a domain.ContributionRepository.
func (s *Store) Contributions() *ContributionRepository { return &ContributionRepository{s: s} }

// track records insertion order; callers hold the write lock.
func (s *Store) track(id string) {
	s.seq++
	s.order[id] = s.seq
}

func (s *Store) sortByInsertion(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return s.order[ids[i]] < s.order[ids[j]] })
}

func checkContext(ctx context.Context) error {
	return ctx.Err()
}

func newID() string { return uuid.NewString() }

// UserRepository implements domain.UserRepository.
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.ID = newID()
	user.CreatedAt = r.s.now()
	r.s.users[user.ID] = *user
	r.s.track(user.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.UserRepository = (*UserRepository)(nil)
