package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dehashed-sdk/sdk/dehashed"
	"dehashed-sdk/sdk/dehashed/domain"
)

// Exemplo: busca direta (sem scheduler).
//
// DEHASHED_EMAIL e DEHASHED_API_KEY são obrigatórios; DEHASHED_QUERY é o
// termo buscado no campo email (padrão: example.com no campo domain).
func main() {
	email := os.Getenv("DEHASHED_EMAIL")
	apiKey := os.Getenv("DEHASHED_API_KEY")
	if email == "" || apiKey == "" {
		log.Fatalf("DEHASHED_EMAIL and DEHASHED_API_KEY are required")
	}

	client, err := dehashed.New(email, apiKey, dehashed.Options{
		BaseURL: os.Getenv("DEHASHED_BASE_URL"), // vazio usa o oficial
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("client error: %v", err)
	}

	query := domain.Domain(domain.Simple("example.com"))
	if term := os.Getenv("DEHASHED_QUERY"); term != "" {
		query = domain.Email(domain.Simple(term))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	res, err := client.Search(ctx, query)
	if err != nil {
		log.Fatalf("search error: %v", err)
	}

	log.Printf("balance restante: %d", res.Balance)
	log.Printf("entries: %d", len(res.Entries))
	for _, e := range res.Entries {
		line := ""
		if e.Email != nil {
			line += " email=" + *e.Email
		}
		if e.Username != nil {
			line += " username=" + *e.Username
		}
		if e.DatabaseName != nil {
			line += " db=" + *e.DatabaseName
		}
		log.Printf("entry %d:%s", e.ID, line)
	}
}
