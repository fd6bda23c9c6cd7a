package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestLogger)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/event", h.SearchEvents).Methods(http.MethodGet)
	r.HandleFunc("/event/{id}", h.GetEvent).Methods(http.MethodGet)
	r.HandleFunc("/season/{id}", h.GetSeason).Methods(http.MethodGet)
	r.HandleFunc("/media/{id}", h.GetMedia).Methods(http.MethodGet)

	r.HandleFunc("/user", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/api/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	r.HandleFunc("/order", h.requireAuth(h.PlaceOrder)).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		errorJSON(w, http.StatusNotFound, "not found")
	})
	return r
}
