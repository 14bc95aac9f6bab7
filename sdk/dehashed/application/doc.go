// Package application contém os casos de uso do SDK: o loop de paginação
// da busca e o worker único do scheduler.
//
// Ele depende apenas do pacote domain e não conhece net/http.
// Ex.: SearchService.Search(ctx, q) percorre as páginas e devolve o
// agregado; SchedulerService.Run(ctx) drena a fila de requisições.
package application
