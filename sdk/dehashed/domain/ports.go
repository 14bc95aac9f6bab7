package domain

import "context"

// PageResult é o conteúdo de uma página devolvida pelo provedor, já
// decodificada mas ainda não normalizada.
type PageResult struct {
	Balance int
	Entries []RawEntry
	Success bool
	Took    string
	Total   int
}

// PageFetcher busca uma página no provedor remoto.
//
// A implementação é responsável por autenticação e por classificar o
// status HTTP nos erros deste pacote. A camada application só vê o
// resultado decodificado ou o erro terminal.
type PageFetcher interface {
	FetchPage(ctx context.Context, query string, size, page int) (PageResult, error)
}

// Pacer espaça operações contra o recurso com rate limit.
//
// A semântica é: Wait bloqueia até a próxima operação poder acontecer ou
// até o ctx encerrar. A primeira chamada não deve bloquear.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Searcher executa uma busca completa (todas as páginas).
type Searcher interface {
	Search(ctx context.Context, q Query) (SearchResult, error)
}

// RequestQueue é uma fila limitada (FIFO) de requisições agendadas.
//
// Enqueue bloqueia quando a fila está cheia (backpressure) e devolve
// false se o ctx encerrar antes de conseguir vaga. Next bloqueia até
// haver requisição ou o ctx encerrar. TryNext nunca bloqueia; serve
// para drenar o que sobrou após o cancelamento.
type RequestQueue interface {
	Enqueue(ctx context.Context, req ScheduledRequest) bool
	Next(ctx context.Context) (ScheduledRequest, bool)
	TryNext() (ScheduledRequest, bool)
}
