package application

import (
	"context"
	"errors"
	"testing"

	"dehashed-sdk/sdk/dehashed/domain"
)

type fetchCall struct {
	query string
	size  int
	page  int
}

// fakeFetcher devolve uma página pré-montada por índice (page-1) e
// registra cada chamada.
type fakeFetcher struct {
	pages []domain.PageResult
	errs  []error
	calls []fetchCall
}

func (f *fakeFetcher) FetchPage(_ context.Context, query string, size, page int) (domain.PageResult, error) {
	f.calls = append(f.calls, fetchCall{query: query, size: size, page: page})
	i := page - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return domain.PageResult{}, f.errs[i]
	}
	if i >= len(f.pages) {
		return domain.PageResult{}, errors.New("fake: no page prepared")
	}
	return f.pages[i], nil
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(context.Context) error {
	p.waits++
	return nil
}

type capturingStats struct {
	events []domain.SearchEvent
}

func (s *capturingStats) Record(_ context.Context, ev domain.SearchEvent) error {
	s.events = append(s.events, ev)
	return nil
}

func rawEntries(ids ...string) []domain.RawEntry {
	out := make([]domain.RawEntry, len(ids))
	for i, id := range ids {
		out[i] = domain.RawEntry{ID: id}
	}
	return out
}

func TestSearchService_SinglePageSingleCall(t *testing.T) {
	fetcher := &fakeFetcher{pages: []domain.PageResult{
		{Balance: 90, Entries: rawEntries("1", "2"), Success: true, Total: 2},
	}}
	pacer := &countingPacer{}
	svc := SearchService{
		Fetcher:  fetcher,
		NewPacer: func() domain.Pacer { return pacer },
	}

	res, err := svc.Search(context.Background(), domain.Email(domain.Simple("joe")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fetcher.calls) != 1 {
		t.Fatalf("expected exactly one fetch, got %d", len(fetcher.calls))
	}
	// uma espera só, e a primeira espera do pacer é imediata: busca de
	// página única não paga delay nenhum
	if pacer.waits != 1 {
		t.Fatalf("expected one pacer wait, got %d", pacer.waits)
	}
	call := fetcher.calls[0]
	if call.query != "email:joe" || call.size != DefaultPageSize || call.page != 1 {
		t.Fatalf("unexpected fetch call: %+v", call)
	}
	if len(res.Entries) != 2 || res.Balance != 90 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSearchService_TwoPagesAggregateAndOverwriteBalance(t *testing.T) {
	fetcher := &fakeFetcher{pages: []domain.PageResult{
		{Balance: 99, Entries: rawEntries("1", "2"), Success: true, Total: 3},
		{Balance: 98, Entries: rawEntries("3"), Success: true, Total: 3},
	}}
	pacer := &countingPacer{}
	svc := SearchService{
		Fetcher:  fetcher,
		NewPacer: func() domain.Pacer { return pacer },
		PageSize: 2,
	}

	res, err := svc.Search(context.Background(), domain.Username(domain.Simple("joe")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fetcher.calls) != 2 {
		t.Fatalf("expected two fetches, got %d", len(fetcher.calls))
	}
	if fetcher.calls[0].page != 1 || fetcher.calls[1].page != 2 {
		t.Fatalf("expected pages 1,2, got %+v", fetcher.calls)
	}
	if pacer.waits != 2 {
		t.Fatalf("expected a pacer wait per page, got %d", pacer.waits)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("expected 3 aggregated entries, got %d", len(res.Entries))
	}
	// ordem: página 1 primeiro, depois página 2
	if res.Entries[0].ID != 1 || res.Entries[2].ID != 3 {
		t.Fatalf("entries out of order: %+v", res.Entries)
	}
	// saldo é o da última página, não a soma
	if res.Balance != 98 {
		t.Fatalf("expected balance from last page (98), got %d", res.Balance)
	}
}

func TestSearchService_ErrorDiscardsPartialResults(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: []domain.PageResult{
			{Balance: 99, Entries: rawEntries("1", "2"), Success: true, Total: 4},
		},
		errs: []error{nil, domain.ErrUnauthorized},
	}
	svc := SearchService{Fetcher: fetcher, PageSize: 2}

	res, err := svc.Search(context.Background(), domain.Email(domain.Simple("joe")))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(res.Entries) != 0 || res.Balance != 0 {
		t.Fatalf("expected partial results to be discarded, got %+v", res)
	}
}

func TestSearchService_SuccessFalseIsUnknown(t *testing.T) {
	fetcher := &fakeFetcher{pages: []domain.PageResult{
		{Balance: 99, Success: false, Total: 0},
	}}
	svc := SearchService{Fetcher: fetcher}

	_, err := svc.Search(context.Background(), domain.Email(domain.Simple("joe")))
	if !errors.Is(err, domain.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestSearchService_BadEntryAbortsSearch(t *testing.T) {
	fetcher := &fakeFetcher{pages: []domain.PageResult{
		{Entries: rawEntries("1", "nope"), Success: true, Total: 2},
	}}
	svc := SearchService{Fetcher: fetcher}

	res, err := svc.Search(context.Background(), domain.Email(domain.Simple("joe")))
	if !errors.Is(err, domain.ErrEntryID) {
		t.Fatalf("expected ErrEntryID, got %v", err)
	}
	if len(res.Entries) != 0 {
		t.Fatalf("expected no entries on abort, got %d", len(res.Entries))
	}
}

func TestSearchService_RecordsStatsBestEffort(t *testing.T) {
	stats := &capturingStats{}
	fetcher := &fakeFetcher{pages: []domain.PageResult{
		{Balance: 77, Entries: rawEntries("1"), Success: true, Total: 1},
	}}
	svc := SearchService{Fetcher: fetcher, Stats: stats}

	if _, err := svc.Search(context.Background(), domain.Phone(domain.Simple("555"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.events) != 1 {
		t.Fatalf("expected one event, got %d", len(stats.events))
	}
	ev := stats.events[0]
	if !ev.OK || ev.Field != domain.FieldPhone || ev.Entries != 1 || ev.Pages != 1 || ev.Balance != 77 {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// busca com erro também gera evento, marcado como falha
	svc.Fetcher = &fakeFetcher{errs: []error{domain.ErrRateLimited}}
	_, _ = svc.Search(context.Background(), domain.Phone(domain.Simple("555")))
	if len(stats.events) != 2 || stats.events[1].OK {
		t.Fatalf("expected a failed event, got %+v", stats.events)
	}
}
