// Package dehashed é a porta de entrada do SDK para a API de busca de
// vazamentos do dehashed.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (query, entries, erros), sem
//     dependência de net/http
//   - application: casos de uso (loop de paginação, worker do scheduler)
//     sem net/http
//   - infra: implementações concretas (transporte HTTP, pacer por token
//     bucket, fila por channel, stores de estatística)
//   - dehashed (este pacote): Client/Scheduler públicos + wiring das camadas
//
// Dois modos de uso:
//
//  1. Direto: Client.Search executa a busca na hora, paginando até o fim.
//     Chamadas diretas concorrentes são independentes entre si.
//  2. Agendado: Client.StartScheduler sobe um worker único que serializa
//     todas as buscas agendadas com espaçamento fixo, para não estourar o
//     limite de requisições por segundo que bane a conta no provedor.
package dehashed
