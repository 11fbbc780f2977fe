// Package cifserve converts PDB files to mmCIF over HTTP.
package cifserve

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andrew-torda/cifwrite/pkg/config"
	"github.com/andrew-torda/cifwrite/pkg/logging"
	"github.com/andrew-torda/cifwrite/pkg/mmcif"
	"github.com/andrew-torda/cifwrite/pkg/pdbread"
)

// Server is the HTTP server for conversions.
type Server struct {
	cfg    config.ServerConfig
	nwork  int
	router *chi.Mux
	server *http.Server
}

// NewServer makes a server with its routes set up. workers is passed
// on to mmcif.WriteStructure.
func NewServer(cfg config.ServerConfig, workers int) *Server {
	s := &Server{cfg: cfg, nwork: workers, router: chi.NewRouter()}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(cfg.Timeout))

	s.router.Get("/healthz", handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/atom_site", s.handleAtomSite)
	})
	return s
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	slog.Info("server starting", "addr", s.cfg.Addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// handleAtomSite reads a PDB file, possibly gzipped, from the body and
// replies with the mmCIF text. Query parameters are block, the data
// block code, and entities=1 to give each chain an entity.
func (s *Server) handleAtomSite(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBody)
	opts := pdbread.Options{Entities: r.URL.Query().Get("entities") == "1"}
	strct, err := pdbread.Read(body, opts)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			log.Warn("body too large", "limit", tooBig.Limit)
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Info("bad PDB input", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	wopts := mmcif.Options{BlockCode: r.URL.Query().Get("block"), Workers: s.nwork}
	if err := mmcif.WriteStructure(r.Context(), &buf, strct, wopts); err != nil {
		var bce *mmcif.BlockCodeError
		switch {
		case errors.Is(err, mmcif.ErrEmptyInput):
			http.Error(w, "no atoms to write", http.StatusUnprocessableEntity)
		case errors.As(err, &bce):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case r.Context().Err() != nil:
			log.Warn("conversion abandoned", "error", err)
		default:
			log.Error("writing mmCIF", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	log.Debug("converted", "atoms", strct.NAtom(), "bytes", buf.Len())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes())
}
