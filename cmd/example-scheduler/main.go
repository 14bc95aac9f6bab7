package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"dehashed-sdk/sdk/dehashed"
	"dehashed-sdk/sdk/dehashed/domain"
	"dehashed-sdk/sdk/dehashed/infra"

	"github.com/redis/go-redis/v9"
)

// Exemplo: modo agendado. Várias goroutines enfileiram buscas no mesmo
// scheduler; o worker único serializa tudo com o espaçamento configurado
// para não estourar o limite do provedor. Opcionalmente grava a
// contabilidade em Redis (útil quando vários processos dividem a conta).
func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var statsStore domain.StatsStore
	if cfg.statsRedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			log.Fatalf("redis stats ping error: %v", err)
		}

		statsStore = infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.statsPrefix),
			infra.WithStatsTTL(cfg.statsTTL),
			infra.WithStatsTrackFields(cfg.statsTrackFields),
		)
	}

	client, err := dehashed.New(cfg.email, cfg.apiKey, dehashed.Options{
		BaseURL:         cfg.baseURL,
		RequestInterval: cfg.requestInterval,
		QueueSize:       cfg.queueSize,
		Stats:           statsStore,
		Logger:          log.Default(),
	})
	if err != nil {
		log.Fatalf("client error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := client.StartScheduler()
	defer sched.Stop()

	log.Printf("scheduler: interval=%s queue=%d stats=%v", cfg.requestInterval, cfg.queueSize, statsStore != nil)

	queries := []domain.Query{
		domain.Domain(domain.Simple("example.com")),
		domain.Email(domain.Simple("joe@example.com")),
		domain.Username(domain.Or{domain.Simple("joe"), domain.Exact("johnny")}),
	}

	replies := make([]<-chan domain.SearchOutcome, 0, len(queries))
	for _, q := range queries {
		reply, ok := sched.Schedule(ctx, q)
		if !ok {
			log.Printf("schedule cancelled before getting a slot")
			return
		}
		replies = append(replies, reply)
	}

	for i, reply := range replies {
		select {
		case out, ok := <-reply:
			if !ok {
				log.Printf("query %d: scheduler stopped before running it", i)
				continue
			}
			if out.Err != nil {
				log.Printf("query %d: error: %v", i, out.Err)
				continue
			}
			log.Printf("query %d: %d entries, balance %d", i, len(out.Result.Entries), out.Result.Balance)
		case <-ctx.Done():
			log.Printf("interrupted")
			return
		}
	}
}

type config struct {
	email           string
	apiKey          string
	baseURL         string
	requestInterval time.Duration
	queueSize       int

	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration
	statsTrackFields   bool
}

func readConfig() (config, error) {
	cfg := config{}
	cfg.email = os.Getenv("DEHASHED_EMAIL")
	cfg.apiKey = os.Getenv("DEHASHED_API_KEY")
	cfg.baseURL = os.Getenv("DEHASHED_BASE_URL")
	cfg.requestInterval = getenvDurationDefault("REQUEST_INTERVAL", dehashed.DefaultRequestInterval)
	cfg.queueSize = getenvIntDefault("QUEUE_SIZE", dehashed.DefaultQueueSize)

	cfg.statsRedisAddr = os.Getenv("STATS_REDIS_ADDR")
	cfg.statsRedisPassword = os.Getenv("STATS_REDIS_PASSWORD")
	cfg.statsRedisDB = getenvIntDefault("STATS_REDIS_DB", 0)
	cfg.statsPrefix = getenvDefault("STATS_PREFIX", "dehashed:stats")
	cfg.statsTTL = getenvDurationDefault("STATS_TTL", 24*time.Hour)
	cfg.statsTrackFields = getenvBoolDefault("STATS_TRACK_FIELDS", false)

	if strings.TrimSpace(cfg.email) == "" || strings.TrimSpace(cfg.apiKey) == "" {
		return config{}, errors.New("DEHASHED_EMAIL and DEHASHED_API_KEY are required")
	}
	if cfg.queueSize <= 0 {
		return config{}, errors.New("QUEUE_SIZE must be > 0")
	}
	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvBoolDefault(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
