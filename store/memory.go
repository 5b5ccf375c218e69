package store

import (
	"context"
	"sort"
	"sync"

	"expensetracker/models"
)

// MemoryStore 进程内存储，ID 从 1 开始单调递增，生命周期与实例一致
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.Expense
	nextID  uint
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) FetchByDate(_ context.Context, date string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Expense, 0)
	for _, e := range s.records {
		if e.Date == date {
			list = append(list, e)
		}
	}
	return list, nil
}

func (s *MemoryStore) FetchRange(_ context.Context, start, end string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Expense, 0)
	for _, e := range s.records {
		// 规范格式的日期字符串可直接按字典序比较
		if e.Date >= start && e.Date <= end {
			list = append(list, e)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date < list[j].Date
	})
	return list, nil
}

func (s *MemoryStore) Insert(_ context.Context, e models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	s.records = append(s.records, e)
	return e, nil
}

func (s *MemoryStore) DeleteByDate(_ context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, e := range s.records {
		if e.Date != date {
			kept = append(kept, e)
		}
	}
	// 清掉尾部残留，避免旧记录被底层数组引用
	for i := len(kept); i < len(s.records); i++ {
		s.records[i] = models.Expense{}
	}
	s.records = kept
	return nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	last := len(s.records) - 1
	copy(s.records[i:], s.records[i+1:])
	s.records[last] = models.Expense{}
	s.records = s.records[:last]
	return nil
}

func (s *MemoryStore) UpdateByID(_ context.Context, id uint, e models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Expense{}, ErrNotFound
	}
	e.ID = id
	e.CreatedAt = s.records[i].CreatedAt
	s.records[i] = e
	return e, nil
}

func (s *MemoryStore) indexOf(id uint) int {
	for i, e := range s.records {
		if e.ID == id {
			return i
		}
	}
	return -1
}
