// Package infra contém implementações concretas (infraestrutura) para os
// contratos definidos no pacote domain.
//
// Exemplos:
//   - ProviderClient: transporte HTTP da API do provedor (basic auth,
//     classificação de status em erros de domínio)
//   - IntervalPacer: espaçamento por token bucket usando golang.org/x/time/rate
//   - ChanQueue: fila limitada simples baseada em channel
//   - MemoryStatsStore / RedisStatsStore: contabilidade de buscas
package infra
