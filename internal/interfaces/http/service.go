package httpinterface

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/application"
)

const shutdownTimeout = 5 * time.Second

// adminTokenHeader carries the caller identity checked against the
// configured administrator on registry mutations.
const adminTokenHeader = "X-Admin-Token"

type Service interface {
	Start() error
	Stop()
}

type service struct {
	adapterSvc *application.AdapterService
	server     *http.Server
}

// NewService returns the daemon's HTTP interface bound to the given
// address.
func NewService(
	addr string, adapterSvc *application.AdapterService,
) (Service, error) {
	if addr == "" {
		return nil, fmt.Errorf("http interface: missing listening address")
	}

	svc := &service{adapterSvc: adapterSvc}
	svc.server = &http.Server{
		Addr:    addr,
		Handler: svc.router(),
	}
	return svc, nil
}

func (s *service) Start() error {
	log.Infof("http interface is listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *service) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("error while shutting down http interface")
	}
}

func (s *service) router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", adminTokenHeader},
	}))
	r.Use(requestLogger)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/price/{symbol}", s.loadPriceHandler)
		r.Post("/registry", s.addEntryHandler)
		r.Get("/registry", s.listRegistryHandler)
		r.Get("/registry/symbol/{symbol}", s.resolveSymbolHandler)
		r.Get("/registry/feed/{feedID}", s.resolveFeedIDHandler)
		r.Post("/activate", s.activateHandler)
		r.Get("/sources", s.sourcesHandler)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		log.WithField("method", r.Method).
			WithField("path", r.URL.Path).
			WithField("elapsed", time.Since(start).String()).
			Debug("handled request")
	})
}
