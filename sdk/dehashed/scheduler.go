package dehashed

import (
	"context"
	"sync"

	"dehashed-sdk/sdk/dehashed/domain"
)

// Scheduler é o handle público do worker de buscas agendadas.
//
// O ponteiro pode ser compartilhado entre quantas goroutines quiser:
// todas enfileiram na mesma fila e Stop por qualquer uma delas para o
// worker compartilhado de todas.
type Scheduler struct {
	queue  domain.RequestQueue
	cancel context.CancelFunc
	done   chan struct{}
	stop   sync.Once
}

// Schedule enfileira uma busca e devolve o canal por onde o resultado
// chega. Bloqueia se a fila estiver cheia; devolve ok=false se o ctx
// encerrar antes de conseguir vaga.
//
// O canal recebe exatamente um SearchOutcome — ou é fechado sem valor se
// o scheduler for parado antes de processar a requisição.
func (s *Scheduler) Schedule(ctx context.Context, q domain.Query) (<-chan domain.SearchOutcome, bool) {
	req, reply := domain.NewScheduledRequest(q)
	if !s.queue.Enqueue(ctx, req) {
		return nil, false
	}
	return reply, true
}

// Enqueue enfileira uma requisição já montada (para quem quer controlar
// o próprio canal de resposta). Mesma semântica de bloqueio do Schedule.
func (s *Scheduler) Enqueue(ctx context.Context, req domain.ScheduledRequest) bool {
	return s.queue.Enqueue(ctx, req)
}

// Stop aborta o worker imediatamente, sem drenar trabalho pendente: a
// busca em voo é cancelada e as requisições ainda na fila nunca são
// processadas — seus canais de resposta são fechados sem valor.
// Idempotente; bloqueia até o worker realmente sair.
func (s *Scheduler) Stop() {
	s.stop.Do(s.cancel)
	<-s.done
}
