package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dehashed-sdk/sdk/dehashed/domain"
)

// DefaultBaseURL é o endpoint de busca do provedor (TLS obrigatório).
const DefaultBaseURL = "https://api.dehashed.com/search"

const defaultTimeout = 10 * time.Second

// searchResponse é o envelope JSON do provedor. `entries` pode vir
// ausente; o zero value (slice nil) cobre isso.
type searchResponse struct {
	Balance int               `json:"balance"`
	Entries []domain.RawEntry `json:"entries"`
	Success bool              `json:"success"`
	Took    string            `json:"took"`
	Total   int               `json:"total"`
}

// ProviderClient implementa domain.PageFetcher sobre a API HTTP do
// provedor: GET com basic auth (email + api key em minúsculas) e
// parâmetros size/query/page.
type ProviderClient struct {
	baseURL string
	email   string
	apiKey  string
	httpc   *http.Client
	logger  *log.Logger
}

type ProviderOption func(*ProviderClient)

// WithBaseURL troca o endpoint (testes, proxy).
func WithBaseURL(u string) ProviderOption {
	return func(p *ProviderClient) { p.baseURL = u }
}

// WithHTTPClient substitui o client HTTP. O CheckRedirect dele é
// sobrescrito: o provedor sinaliza query inválida com 302 e nós
// precisamos ver o redirect em vez de segui-lo.
func WithHTTPClient(c *http.Client) ProviderOption {
	return func(p *ProviderClient) { p.httpc = c }
}

// WithLogger habilita log de diagnóstico (corpo não parseável etc).
func WithLogger(l *log.Logger) ProviderOption {
	return func(p *ProviderClient) { p.logger = l }
}

// NewProviderClient cria o transporte autenticado. A api key é
// normalizada para minúsculas, como o provedor exige.
func NewProviderClient(email, apiKey string, opts ...ProviderOption) *ProviderClient {
	p := &ProviderClient{
		baseURL: DefaultBaseURL,
		email:   email,
		apiKey:  strings.ToLower(apiKey),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.httpc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return p
}

// FetchPage busca uma página e classifica o status HTTP:
// 200 decodifica, 302 query inválida, 400 rate limit, 401 credenciais,
// resto é desconhecido. Qualquer não-200 é terminal.
func (p *ProviderClient) FetchPage(ctx context.Context, query string, size, page int) (domain.PageResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("montando request: %w", err)
	}
	req.SetBasicAuth(p.email, p.apiKey)
	req.Header.Set("Accept", "application/json")

	params := url.Values{}
	params.Set("size", strconv.Itoa(size))
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = params.Encode()

	res, err := p.httpc.Do(req)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("request ao provedor: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	switch res.StatusCode {
	case http.StatusOK:
		// segue para o decode abaixo
	case http.StatusFound:
		return domain.PageResult{}, domain.ErrInvalidQuery
	case http.StatusBadRequest:
		return domain.PageResult{}, domain.ErrRateLimited
	case http.StatusUnauthorized:
		return domain.PageResult{}, domain.ErrUnauthorized
	default:
		return domain.PageResult{}, fmt.Errorf("%w: status %d", domain.ErrUnknown, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("%w: lendo corpo: %v", domain.ErrUnknown, err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// o corpo cru ajuda a diagnosticar mudança de formato do provedor
		p.logf("corpo não parseável do provedor: %s", body)
		return domain.PageResult{}, fmt.Errorf("%w: corpo não parseável: %v", domain.ErrUnknown, err)
	}

	return domain.PageResult{
		Balance: parsed.Balance,
		Entries: parsed.Entries,
		Success: parsed.Success,
		Took:    parsed.Took,
		Total:   parsed.Total,
	}, nil
}

func (p *ProviderClient) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
