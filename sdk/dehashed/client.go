package dehashed

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"dehashed-sdk/sdk/dehashed/application"
	"dehashed-sdk/sdk/dehashed/domain"
	"dehashed-sdk/sdk/dehashed/infra"
)

// Padrões compatíveis com o limite (não documentado) do provedor.
// São configuráveis via Options, mas mexa sabendo o que está fazendo:
// mais de 5 req/s na mesma conta leva a ban.
const (
	DefaultPageInterval    = 200 * time.Millisecond
	DefaultRequestInterval = 200 * time.Millisecond
	DefaultQueueSize       = 5
)

// Options ajusta o comportamento do Client. O valor zero usa os padrões.
type Options struct {
	// BaseURL troca o endpoint do provedor (testes, proxy).
	// Vazio usa o oficial.
	BaseURL string

	// HTTPClient substitui o client HTTP (por padrão, timeout de 10s).
	HTTPClient *http.Client

	// PageSize substitui o tamanho de página. <= 0 usa 10000.
	PageSize int

	// PageInterval é o espaçamento entre páginas de uma mesma busca.
	// Zero usa o padrão; negativo desliga o espaçamento.
	PageInterval time.Duration

	// RequestInterval é o espaçamento entre requisições do scheduler.
	// Zero usa o padrão; negativo desliga o espaçamento.
	RequestInterval time.Duration

	// QueueSize é a capacidade da fila do scheduler (backpressure:
	// produtores bloqueiam quando enche).
	QueueSize int

	// Stats recebe um evento por busca concluída (best-effort). Opcional.
	Stats domain.StatsStore

	// Logger para diagnóstico. nil = silencioso.
	Logger *log.Logger
}

// Client é o SDK autenticado. Seguro para uso concorrente: cada Search
// direto abre sua própria sequência de requisições.
type Client struct {
	opts Options
	svc  application.SearchService
}

// New cria um Client. email e apiKey são as credenciais da conta; a api
// key é normalizada para minúsculas. Falha se as credenciais estiverem
// vazias ou se BaseURL não parsear.
func New(email, apiKey string, opts Options) (*Client, error) {
	if email == "" || apiKey == "" {
		return nil, errors.New("email e api key são obrigatórios")
	}
	if opts.PageInterval == 0 {
		opts.PageInterval = DefaultPageInterval
	}
	if opts.RequestInterval == 0 {
		opts.RequestInterval = DefaultRequestInterval
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	var popts []infra.ProviderOption
	if opts.BaseURL != "" {
		if _, err := url.Parse(opts.BaseURL); err != nil {
			return nil, err
		}
		popts = append(popts, infra.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		popts = append(popts, infra.WithHTTPClient(opts.HTTPClient))
	}
	if opts.Logger != nil {
		popts = append(popts, infra.WithLogger(opts.Logger))
	}

	pageInterval := opts.PageInterval
	svc := application.SearchService{
		Fetcher:  infra.NewProviderClient(email, apiKey, popts...),
		NewPacer: func() domain.Pacer { return infra.NewIntervalPacer(pageInterval) },
		Stats:    opts.Stats,
		PageSize: opts.PageSize,
		Logger:   opts.Logger,
	}

	return &Client{opts: opts, svc: svc}, nil
}

// Search executa a busca completa (modo direto), paginando até o fim.
// Qualquer erro é terminal e descarta as páginas já acumuladas.
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.SearchResult, error) {
	return c.svc.Search(ctx, q)
}

// StartScheduler sobe o worker único que serializa buscas agendadas.
// Suba um scheduler só por conta; o handle pode ser compartilhado à
// vontade entre goroutines.
func (c *Client) StartScheduler() *Scheduler {
	queue := infra.NewChanQueue(c.opts.QueueSize)
	svc := application.SchedulerService{
		Searcher: c.svc,
		Queue:    queue,
		Pacer:    infra.NewIntervalPacer(c.opts.RequestInterval),
		Logger:   c.opts.Logger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		queue:  queue,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		svc.Run(ctx)
	}()
	return s
}
