// internal/httpserver/server.go
//
// HTTP server wiring for the bitmap template server.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, access log).
//   - Public endpoints: "/", "/health".
//   - GET /bitmap.txt: the template, as plain text (what a remote source fetches).
//   - GET /render?text=...: the template rendered with text.
//
// Notes:
//   - The template is fetched from the configured source on every request.
//   - Errors are JSON bodies, like the 404 handler.

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/novelties/internal/bitmap"
)

// Server bundles the router and the template source.
type Server struct {
	r      *chi.Mux
	source bitmap.TemplateSource
}

// New constructs a Server, installs middleware, and registers routes.
func New(src bitmap.TemplateSource) *Server {
	s := &Server{r: chi.NewRouter(), source: src}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(accessLog)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"service":"bitmap","endpoints":["/health","/bitmap.txt","/render?text="]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/bitmap.txt", s.handleTemplate)
	s.r.Get("/render", s.handleRender)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("serving bitmap template")
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handleTemplate writes the raw template followed by a newline.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.source.FetchTemplate(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load template")
		jsonError(w, http.StatusBadGateway, "template_unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(tmpl + "\n"))
}

// handleRender draws ?text= through the template.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.source.FetchTemplate(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load template")
		jsonError(w, http.StatusBadGateway, "template_unavailable")
		return
	}
	art, err := bitmap.Render(tmpl, r.URL.Query().Get("text"))
	if errors.Is(err, bitmap.ErrEmptyFill) {
		jsonError(w, http.StatusBadRequest, "text_required")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(art + "\n"))
}

// ----------------------------- middleware ----------------------------------

// accessLog logs one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("requestId", chimw.GetReqID(r.Context())).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func jsonError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + code + `"}`))
}
