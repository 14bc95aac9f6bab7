package domain

// SearchOutcome é o resultado entregue pelo worker do scheduler:
// sucesso ou erro, nunca os dois.
type SearchOutcome struct {
	Result SearchResult
	Err    error
}

// ScheduledRequest é uma unidade de trabalho adiado: uma Query e o canal
// por onde o worker devolve o resultado.
//
// O envio da resposta é best-effort: se o chamador abandonou o canal, o
// worker loga e segue para a próxima requisição. Se o scheduler for
// parado antes de processar a requisição, o canal é fechado sem valor.
type ScheduledRequest struct {
	Query Query
	Reply chan SearchOutcome
}

// NewScheduledRequest cria uma requisição com canal de resposta com
// buffer 1, garantindo que o envio do worker nunca bloqueia mesmo que o
// chamador demore a ler.
func NewScheduledRequest(q Query) (ScheduledRequest, <-chan SearchOutcome) {
	reply := make(chan SearchOutcome, 1)
	return ScheduledRequest{Query: q, Reply: reply}, reply
}
