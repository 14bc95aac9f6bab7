package domain

import (
	"fmt"
	"net/netip"
	"strconv"
)

// RawEntry é o registro cru como vem do provedor: todos os campos são
// strings, possivelmente vazias. Existe só para alimentar a normalização;
// não faz parte do modelo público.
type RawEntry struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	HashedPassword string `json:"hashed_password"`
	IPAddress      string `json:"ip_address"`
	Name           string `json:"name"`
	Vin            string `json:"vin"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	DatabaseName   string `json:"database_name"`
}

// SearchEntry é o registro normalizado. Campos opcionais são ponteiros:
// nil significa que o provedor devolveu string vazia.
type SearchEntry struct {
	ID             uint64
	Email          *string
	Username       *string
	Password       *string
	HashedPassword *string
	IPAddress      *netip.Addr
	Name           *string
	Vin            *string
	Address        *string
	Phone          *string
	DatabaseName   *string
}

// SearchResult agrega as entries de todas as páginas (na ordem em que o
// provedor devolveu) e o saldo de créditos restante.
//
// Balance é o valor reportado pela página mais recente, não uma soma:
// o provedor informa o saldo atual da conta a cada resposta.
type SearchResult struct {
	Entries []SearchEntry
	Balance int
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeEntry converte um RawEntry em SearchEntry.
//
// String vazia vira ausente (nil). id precisa parsear como inteiro sem
// sinal e ip_address como endereço IP; falha em qualquer um é fatal para
// a resposta inteira (ErrEntryID / ErrEntryIP).
func NormalizeEntry(raw RawEntry) (SearchEntry, error) {
	id, err := strconv.ParseUint(raw.ID, 10, 64)
	if err != nil {
		return SearchEntry{}, fmt.Errorf("%w: %q", ErrEntryID, raw.ID)
	}

	entry := SearchEntry{
		ID:             id,
		Email:          optional(raw.Email),
		Username:       optional(raw.Username),
		Password:       optional(raw.Password),
		HashedPassword: optional(raw.HashedPassword),
		Name:           optional(raw.Name),
		Vin:            optional(raw.Vin),
		Address:        optional(raw.Address),
		Phone:          optional(raw.Phone),
		DatabaseName:   optional(raw.DatabaseName),
	}

	if raw.IPAddress != "" {
		addr, err := netip.ParseAddr(raw.IPAddress)
		if err != nil {
			return SearchEntry{}, fmt.Errorf("%w: %q", ErrEntryIP, raw.IPAddress)
		}
		entry.IPAddress = &addr
	}

	return entry, nil
}
