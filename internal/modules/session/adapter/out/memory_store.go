package out

import (
	"sync"

	"campusqa/internal/modules/session/domain"
)

// MemoryStore keeps the session registry and transcripts in memory. It
// backs the running UI; durability is the history projector's job.
type MemoryStore struct {
	mu          sync.RWMutex
	order       []string
	sessions    map[string]domain.Session
	transcripts map[string][]domain.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]domain.Session),
		transcripts: make(map[string][]domain.Message),
	}
}

func (m *MemoryStore) Add(s domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.sessions[s.ID] = s
}

func (m *MemoryStore) Find(id string) (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemoryStore) First() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.order) == 0 {
		return domain.Session{}, false
	}
	return m.sessions[m.order[0]], true
}

func (m *MemoryStore) List() []domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Session, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sessions[id])
	}
	return out
}

func (m *MemoryStore) Update(s domain.Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		return false
	}
	m.sessions[s.ID] = s
	return true
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

func (m *MemoryStore) Append(sessionID string, msg domain.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts[sessionID] = append(m.transcripts[sessionID], msg)
}

func (m *MemoryStore) Messages(sessionID string) []domain.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.transcripts[sessionID]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}
