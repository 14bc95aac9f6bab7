// Package domain define contratos e tipos de domínio do SDK dehashed.
//
// Este pacote não depende de net/http nem de implementações concretas.
// A intenção é permitir testes de unidade puros e desacoplar as regras
// (renderização de query, normalização de entries, classificação de erros)
// de detalhes de infraestrutura.
package domain
