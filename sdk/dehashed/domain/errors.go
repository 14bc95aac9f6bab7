package domain

import "errors"

// Erros terminais do SDK. Nenhum deles dispara retry automático: o
// pacing entre páginas/requisições é medida de espaçamento, não retry.
var (
	// ErrUnauthorized indica credenciais de API inválidas (HTTP 401).
	ErrUnauthorized = errors.New("credenciais de API inválidas")

	// ErrInvalidQuery indica query ausente ou malformada. O provedor
	// sinaliza isso com um redirect (HTTP 302), não com 4xx.
	ErrInvalidQuery = errors.New("query ausente ou inválida")

	// ErrRateLimited indica que a conta estourou a cota (HTTP 400).
	ErrRateLimited = errors.New("conta com rate limit estourado")

	// ErrUnknown cobre status não reconhecido, corpo não parseável e
	// resposta com success=false.
	ErrUnknown = errors.New("erro desconhecido do provedor")

	// ErrEntryID indica id de entry que não parseia como inteiro.
	// Aborta a normalização da resposta inteira.
	ErrEntryID = errors.New("id de entry inválido")

	// ErrEntryIP indica ip_address de entry que não parseia.
	// Aborta a normalização da resposta inteira.
	ErrEntryIP = errors.New("ip_address de entry inválido")
)
