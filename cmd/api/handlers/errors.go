package handlers

import (
	"net/http"
)

func Error404Handler(w http.ResponseWriter, r *http.Request) {

	setHeaders(w, "application/json")
	w.WriteHeader(http.StatusNotFound)

	_, _ = w.Write([]byte(`{"error":"not found"}`))
}
