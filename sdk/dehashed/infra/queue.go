package infra

import (
	"context"

	"dehashed-sdk/sdk/dehashed/domain"
)

type chanQueue struct {
	ch chan domain.ScheduledRequest
}

// NewChanQueue cria uma fila FIFO simples baseada em channel com
// capacidade `max`. Produtores bloqueiam quando a fila enche.
func NewChanQueue(max int) domain.RequestQueue {
	if max <= 0 {
		max = 1
	}
	return &chanQueue{ch: make(chan domain.ScheduledRequest, max)}
}

func (q *chanQueue) Enqueue(ctx context.Context, req domain.ScheduledRequest) bool {
	select {
	case q.ch <- req:
		return true
	case <-ctx.Done():
		return false
	}
}

func (q *chanQueue) Next(ctx context.Context) (domain.ScheduledRequest, bool) {
	select {
	case req := <-q.ch:
		return req, true
	case <-ctx.Done():
		return domain.ScheduledRequest{}, false
	}
}

func (q *chanQueue) TryNext() (domain.ScheduledRequest, bool) {
	select {
	case req := <-q.ch:
		return req, true
	default:
		return domain.ScheduledRequest{}, false
	}
}
