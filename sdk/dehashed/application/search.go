package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"dehashed-sdk/sdk/dehashed/domain"
)

// DefaultPageSize é o tamanho fixo de página pedido ao provedor.
const DefaultPageSize = 10_000

// SearchService concentra o loop de paginação da busca.
//
// Ele não sabe nada sobre HTTP (status/headers), apenas consome o
// PageFetcher e aplica as regras: success obrigatório, normalização em
// lote por página, saldo sobrescrito a cada página, parada quando o
// total indica que não há próxima página.
//
// Qualquer erro é terminal para a busca em andamento e descarta o que já
// tinha sido acumulado de páginas anteriores.
type SearchService struct {
	Fetcher domain.PageFetcher

	// NewPacer cria o pacer entre páginas de UMA busca. Cada chamada de
	// Search usa um pacer novo, então buscas diretas concorrentes não
	// interferem umas nas outras. Se nil, não há espera entre páginas.
	NewPacer func() domain.Pacer

	// Stats recebe um evento por busca concluída. Best-effort: erro de
	// Record é ignorado.
	Stats domain.StatsStore

	// PageSize substitui o tamanho de página. <= 0 usa DefaultPageSize.
	PageSize int

	// Logger para diagnóstico. nil = silencioso.
	Logger *log.Logger
}

// Search executa a busca completa, percorrendo todas as páginas.
func (s SearchService) Search(ctx context.Context, q domain.Query) (domain.SearchResult, error) {
	result, pages, err := s.search(ctx, q)

	if s.Stats != nil {
		_ = s.Stats.Record(ctx, domain.SearchEvent{
			Field:   q.Field,
			OK:      err == nil,
			Pages:   pages,
			Entries: len(result.Entries),
			Balance: result.Balance,
			At:      time.Now(),
		})
	}

	return result, err
}

func (s SearchService) search(ctx context.Context, q domain.Query) (domain.SearchResult, int, error) {
	size := s.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	// renderiza uma vez só; a mesma string vale para todas as páginas
	query := q.Render()
	s.logf("busca: %s", query)

	var pacer domain.Pacer
	if s.NewPacer != nil {
		pacer = s.NewPacer()
	}

	var result domain.SearchResult
	pages := 0
	for page := 1; ; page++ {
		if pacer != nil {
			if err := pacer.Wait(ctx); err != nil {
				return domain.SearchResult{}, pages, fmt.Errorf("espera entre páginas: %w", err)
			}
		}

		res, err := s.Fetcher.FetchPage(ctx, query, size, page)
		if err != nil {
			return domain.SearchResult{}, pages, err
		}
		if !res.Success {
			s.logf("resposta do provedor com success=false")
			return domain.SearchResult{}, pages, domain.ErrUnknown
		}

		for _, raw := range res.Entries {
			entry, err := domain.NormalizeEntry(raw)
			if err != nil {
				return domain.SearchResult{}, pages, err
			}
			result.Entries = append(result.Entries, entry)
		}
		// saldo é o valor corrente da conta, não acumula
		result.Balance = res.Balance
		pages++

		if res.Total < page*size {
			break
		}
	}

	return result, pages, nil
}

func (s SearchService) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
