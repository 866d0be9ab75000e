package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gatherly/gatherly/internal/api/recovery"
	"github.com/gatherly/gatherly/internal/mediator"
	"github.com/gatherly/gatherly/internal/storage"
)

// NewRouter wires every route through the recovery boundary. dev
// controls whether fault bodies carry diagnostic detail.
func NewRouter(d *mediator.Dispatcher, store storage.Store, dev bool) *mux.Router {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware)

	wrap := func(fn recovery.HandlerFunc) http.HandlerFunc {
		return recovery.Handler(dev, fn)
	}

	h := NewActivityHandler(d)
	r.HandleFunc("/api/activities", wrap(h.ListActivities)).Methods("GET")
	r.HandleFunc("/api/activities", wrap(h.CreateActivity)).Methods("POST")
	r.HandleFunc("/api/activities/{id}", wrap(h.GetActivity)).Methods("GET")
	r.HandleFunc("/api/activities/{id}", wrap(h.UpdateActivity)).Methods("PUT")
	r.HandleFunc("/api/activities/{id}", wrap(h.DeleteActivity)).Methods("DELETE")

	hh := NewHealthHandler(store)
	r.HandleFunc("/api/health", wrap(hh.Health)).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
