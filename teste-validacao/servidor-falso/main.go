package main

import (
	"fmt"
	"net/http"
	"strconv"
)

// Servidor falso do provedor para validar o SDK na mão:
// aponte DEHASHED_BASE_URL=http://localhost:8082/search e rode os exemplos.
func main() {
	http.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user == "" || pass == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		fmt.Printf("Log: query=%q size=%s page=%d\n", r.URL.Query().Get("query"), r.URL.Query().Get("size"), page)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"balance":123,"entries":[{"id":"%d","email":"joe@example.com","username":"joe","password":"hunter2","hashed_password":"","ip_address":"10.0.0.%d","name":"","vin":"","address":"","phone":"","database_name":"vazamento-teste"}],"success":true,"took":"1ms","total":1}`, page, page)
	})
	fmt.Println("Servidor falso rodando em http://localhost:8082/search")
	err := http.ListenAndServe(":8082", nil)
	if err != nil {
		fmt.Printf("Erro ao subir o servidor: %s\n", err)
	}
}
