package infra

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// IntervalPacer implementa domain.Pacer com token bucket (x/time/rate):
// um token por intervalo, burst 1. A primeira espera é imediata; as
// seguintes respeitam o intervalo.
type IntervalPacer struct {
	lim *rate.Limiter
}

// NewIntervalPacer cria um pacer com o intervalo dado. Intervalo <= 0
// desliga o espaçamento (toda espera é imediata).
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	if interval <= 0 {
		return &IntervalPacer{lim: rate.NewLimiter(rate.Inf, 1)}
	}
	return &IntervalPacer{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait bloqueia até a próxima operação poder acontecer ou o ctx encerrar.
func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.lim.Wait(ctx)
}

// Interval devolve o intervalo efetivo entre operações (0 = sem espaçamento).
func (p *IntervalPacer) Interval() time.Duration {
	if p.lim.Limit() == rate.Inf {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(p.lim.Limit()))
}
