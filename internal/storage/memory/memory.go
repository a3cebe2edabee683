// internal/storage/memory/memory.go
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/domain"
	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/storage"

	"github.com/google/uuid"
)

// Storage is an in-process implementation of the storage interfaces used
// as the injected test double for handler tests. Ordering and equality
// semantics mirror the postgres implementation.
type Storage struct {
	mu      sync.Mutex
	users   map[string]domain.User
	costs   []domain.CostEntry
	reports map[reportKey]domain.MonthlyReport
}

type reportKey struct {
	userID string
	year   int
	month  int
}

func NewStorage() *Storage {
	return &Storage{
		users:   make(map[string]domain.User),
		reports: make(map[reportKey]domain.MonthlyReport),
	}
}

// === UserStorage ===

func (s *Storage) CreateUser(_ context.Context, u domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; exists {
		return nil, storage.ErrDuplicateUser
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *Storage) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return nil, storage.ErrUserNotFound
	}
	return &u, nil
}

func (s *Storage) TotalCost(_ context.Context, userID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, c := range s.costs {
		if c.UserID == userID {
			total += c.Sum
		}
	}
	return total, nil
}

// === CostStorage ===

func (s *Storage) CreateCost(_ context.Context, c domain.CostEntry) (*domain.CostEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	s.costs = append(s.costs, c)
	return &c, nil
}

func (s *Storage) CostsForRange(_ context.Context, userID string, from, to time.Time) ([]domain.CostEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.CostEntry
	for _, c := range s.costs {
		if c.UserID != userID || c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		entries = append(entries, c)
	}
	// Date-ascending like postgres; ties keep insertion order, which is
	// as deterministic as postgres's id tiebreak.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

// === ReportStorage ===

func (s *Storage) UpsertReport(_ context.Context, userID string, year, month int, payload []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := reportKey{userID: userID, year: year, month: month}
	if stored, exists := s.reports[key]; exists && bytes.Equal(stored.Payload, payload) {
		return false, nil
	}

	s.reports[key] = domain.MonthlyReport{
		ID:        uuid.NewString(),
		UserID:    userID,
		Year:      year,
		Month:     month,
		Payload:   append([]byte(nil), payload...),
		CreatedAt: time.Now().UTC(),
	}
	return true, nil
}

func (s *Storage) FindReport(_ context.Context, userID string, year, month int) (*domain.MonthlyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.reports[reportKey{userID: userID, year: year, month: month}]
	if !exists {
		return nil, nil
	}
	return &r, nil
}
