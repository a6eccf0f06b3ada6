package store

import (
	"context"
	"sync"
)

// MemoryDoctor is a doctors document held by MemoryStore.
type MemoryDoctor struct {
	DoctorProfile
	Specialization string
	Available      bool
}

// MemoryStore implements Store with in-memory storage. Doctors are
// returned in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	doctors []MemoryDoctor
	users   map[string]UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]UserProfile)}
}

func (s *MemoryStore) AddDoctor(d MemoryDoctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append(s.doctors, d)
}

func (s *MemoryStore) AddUser(u UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *MemoryStore) FindAvailableDoctors(ctx context.Context, specialization string, limit int64) ([]DoctorProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []DoctorProfile{}
	for _, d := range s.doctors {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if d.Available && d.Specialization == specialization {
			out = append(out, d.DoctorProfile)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindUser(ctx context.Context, id string) (*UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
