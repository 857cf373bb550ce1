package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
)

// SlotMemory is a process-local SlotRepository. Nothing survives a restart.
type SlotMemory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSlotMemory() *SlotMemory {
	return &SlotMemory{slots: make(map[string][]byte)}
}

func (m *SlotMemory) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	if !ok {
		return nil, repositories.ErrSlotEmpty
	}
	return append([]byte(nil), value...), nil
}

func (m *SlotMemory) Write(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.slots[key] = append([]byte(nil), value...)
	m.mu.Unlock()
	return nil
}

func (m *SlotMemory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.slots, key)
	m.mu.Unlock()
	return nil
}

func (m *SlotMemory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.slots {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *SlotMemory) Close() error {
	return nil
}
