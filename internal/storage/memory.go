package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

type MemoryStorage struct {
	mu         sync.RWMutex
	complaints map[string]*models.Complaint
	byUser     map[int64][]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		complaints: make(map[string]*models.Complaint),
		byUser:     make(map[int64][]string),
	}
}

func (s *MemoryStorage) SaveComplaint(ctx context.Context, c *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	s.complaints[c.ID] = &stored
	s.byUser[c.UserID] = append(s.byUser[c.UserID], c.ID)
	return nil
}

func (s *MemoryStorage) GetUserComplaints(ctx context.Context, userID int64, limit, offset int) ([]*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	all := make([]*models.Complaint, 0, len(ids))
	for _, id := range ids {
		if c, exists := s.complaints[id]; exists {
			all = append(all, c)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*models.Complaint{}, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	out := make([]*models.Complaint, len(all))
	for i, c := range all {
		copied := *c
		out[i] = &copied
	}
	return out, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
