package application

import (
	"context"
	"log"

	"dehashed-sdk/sdk/dehashed/domain"
)

// SchedulerService é o worker único que drena a fila de requisições
// agendadas e as executa uma por vez (single-flight), espaçadas pelo
// Pacer. Serializar tudo em um worker é o que impede requisições
// concorrentes da mesma conta de estourar o limite do provedor.
type SchedulerService struct {
	Searcher domain.Searcher
	Queue    domain.RequestQueue

	// Pacer persiste entre requisições: a primeira sai na hora, as
	// seguintes respeitam o intervalo. Se nil, não há espaçamento.
	Pacer domain.Pacer

	// Logger para diagnóstico. nil = silencioso.
	Logger *log.Logger
}

// Run consome a fila até o ctx ser cancelado. Bloqueia; rode em goroutine.
//
// O cancelamento é abrupto de propósito: a requisição em voo é
// descartada e as ainda na fila nunca são processadas — seus canais de
// resposta são fechados sem valor, então quem espera observa o
// fechamento, não um erro entregue.
func (s SchedulerService) Run(ctx context.Context) {
	defer s.drain()

	for {
		req, ok := s.Queue.Next(ctx)
		if !ok {
			return
		}

		if s.Pacer != nil {
			if err := s.Pacer.Wait(ctx); err != nil {
				s.discard(req)
				return
			}
		}

		result, err := s.Searcher.Search(ctx, req.Query)
		if ctx.Err() != nil {
			s.discard(req)
			return
		}

		s.deliver(req, domain.SearchOutcome{Result: result, Err: err})
	}
}

// deliver envia o resultado sem bloquear. Se o chamador abandonou o
// canal (sem buffer e ninguém lendo), loga e segue para a próxima.
func (s SchedulerService) deliver(req domain.ScheduledRequest, out domain.SearchOutcome) {
	if req.Reply == nil {
		return
	}
	select {
	case req.Reply <- out:
	default:
		s.logf("scheduler: não consegui devolver o resultado pelo canal")
	}
}

func (s SchedulerService) discard(req domain.ScheduledRequest) {
	if req.Reply != nil {
		close(req.Reply)
	}
}

func (s SchedulerService) drain() {
	for {
		req, ok := s.Queue.TryNext()
		if !ok {
			return
		}
		s.discard(req)
	}
}

func (s SchedulerService) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
