package infra

import (
	"context"
	"sync"

	"dehashed-sdk/sdk/dehashed/domain"
)

type Counters struct {
	OK     int64
	Failed int64
}

// MemoryStatsStore é uma implementação simples em memória.
// Útil para testes e desenvolvimento.
//
// Não faz expiração e não é indicada para produção.
type MemoryStatsStore struct {
	mu      sync.Mutex
	total   Counters
	byField map[string]Counters
	entries int64
	balance int

	trackFields bool
}

type MemoryStatsOption func(*MemoryStatsStore)

func WithTrackFields(track bool) MemoryStatsOption {
	return func(s *MemoryStatsStore) { s.trackFields = track }
}

func NewMemoryStatsStore(opts ...MemoryStatsOption) *MemoryStatsStore {
	s := &MemoryStatsStore{
		byField: make(map[string]Counters),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.SearchEvent) error {
	field := string(ev.Field)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.OK {
		s.total.OK++
		s.entries += int64(ev.Entries)
		// saldo só é confiável quando a busca terminou bem
		s.balance = ev.Balance
		if s.trackFields {
			c := s.byField[field]
			c.OK++
			s.byField[field] = c
		}
		return nil
	}

	s.total.Failed++
	if s.trackFields {
		c := s.byField[field]
		c.Failed++
		s.byField[field] = c
	}
	return nil
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStatsStore) ByField() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byField))
	for k, v := range s.byField {
		out[k] = v
	}
	return out
}

// EntriesSeen devolve o total de entries devolvidas por buscas bem
// sucedidas desde a criação do store.
func (s *MemoryStatsStore) EntriesSeen() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

// LastBalance devolve o último saldo observado (0 se nenhuma busca ok).
func (s *MemoryStatsStore) LastBalance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}
