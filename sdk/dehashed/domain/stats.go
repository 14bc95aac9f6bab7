package domain

import (
	"context"
	"time"
)

// SearchEvent representa uma busca concluída (com sucesso ou não).
//
// Ele é propositalmente agnóstico de transporte: só carrega o campo
// pesquisado e os agregados da operação.
//
// Observação: cuidado com cardinalidade — o texto da query não entra no
// evento de propósito, senão o número de chaves em uma base como Redis
// explode.
type SearchEvent struct {
	Field Field
	OK    bool

	Pages   int
	Entries int
	Balance int

	At time.Time
}

// StatsStore é a estratégia de persistência para contabilidade de buscas.
//
// Implementações podem armazenar em Redis, memória, etc. Quem chama deve
// tratar erro como best-effort (não derrubar a busca).
type StatsStore interface {
	Record(ctx context.Context, ev SearchEvent) error
}
