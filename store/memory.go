package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/biosecret/todoapp-api/models"
)

// memory giữ dữ liệu trong RAM, dùng chung cho cả hai store để có thể
// xóa cascade và join email giống như PostgreSQL
type memory struct {
	mu       sync.RWMutex
	profiles map[int64]models.Profile
	tasks    map[string]models.Task
	nextID   int64
}

// MemoryProfileStore là bản in-memory của ProfileStore, dùng cho test
type MemoryProfileStore struct {
	m *memory
}

// MemoryTaskStore là bản in-memory của TaskStore, dùng cho test
type MemoryTaskStore struct {
	m *memory
}

// NewMemory trả về cặp store dùng chung một vùng dữ liệu
func NewMemory() (*MemoryProfileStore, *MemoryTaskStore) {
	m := &memory{
		profiles: make(map[int64]models.Profile),
		tasks:    make(map[string]models.Task),
	}
	return &MemoryProfileStore{m: m}, &MemoryTaskStore{m: m}
}

func (s *MemoryProfileStore) Create(_ context.Context, p *models.Profile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.profiles {
		if existing.Email == p.Email {
			return ErrDuplicateEmail
		}
	}

	s.m.nextID++
	p.ID = s.m.nextID
	s.m.profiles[p.ID] = *p
	return nil
}

func (s *MemoryProfileStore) Get(_ context.Context, id int64) (*models.Profile, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	p, ok := s.m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryProfileStore) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, p := range s.m.profiles {
		if p.Email == email {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryProfileStore) Update(_ context.Context, p *models.Profile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.profiles[p.ID]; !ok {
		return ErrNotFound
	}
	for _, existing := range s.m.profiles {
		if existing.Email == p.Email && existing.ID != p.ID {
			return ErrDuplicateEmail
		}
	}
	s.m.profiles[p.ID] = *p
	return nil
}

func (s *MemoryProfileStore) Delete(_ context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.profiles[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.profiles, id)

	// cascade: xóa luôn các task thuộc về profile
	for taskID, t := range s.m.tasks {
		if t.UserID == id {
			delete(s.m.tasks, taskID)
		}
	}
	return nil
}

func (s *MemoryTaskStore) Create(_ context.Context, t *models.Task) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	t.Created = time.Now().UTC()
	s.m.tasks[t.ID] = *t
	return nil
}

func (s *MemoryTaskStore) Get(_ context.Context, id string, userID int64) (*models.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	t, ok := s.m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	if p, ok := s.m.profiles[t.UserID]; ok {
		t.Email = p.Email
	}
	return &t, nil
}

func (s *MemoryTaskStore) ListByUser(_ context.Context, userID int64) ([]models.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	email := ""
	if p, ok := s.m.profiles[userID]; ok {
		email = p.Email
	}

	tasks := []models.Task{}
	for _, t := range s.m.tasks {
		if t.UserID != userID {
			continue
		}
		t.Email = email
		tasks = append(tasks, t)
	}
	// mới nhất trước, giống ORDER BY created DESC
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Created.After(tasks[j].Created)
	})
	return tasks, nil
}

func (s *MemoryTaskStore) Update(_ context.Context, t *models.Task) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	existing, ok := s.m.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return ErrNotFound
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.Completed = t.Completed
	s.m.tasks[t.ID] = existing
	return nil
}

func (s *MemoryTaskStore) Delete(_ context.Context, id string, userID int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	t, ok := s.m.tasks[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(s.m.tasks, id)
	return nil
}
