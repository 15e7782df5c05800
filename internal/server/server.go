// Package server exposes an editor over a JSON HTTP API so a browser front
// end can drive it.
//
// One mutex serialises every request. The editor never sees two events at
// once, which keeps it the single owner of the canvas.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hmibuilder/pkg/editor"
	herrors "github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

const shutdownTimeout = 5 * time.Second

// Server serves one editor.
type Server struct {
	mu     sync.Mutex
	editor *editor.Editor
	logger *log.Logger
	bells  []string // bells rung by the request in flight
}

// New returns a server editing store. A nil logger defaults to
// log.Default().
func New(store *layout.Store, opts editor.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}
	s.editor = editor.New(store,
		editor.WithOptions(opts),
		editor.WithLogger(logger),
		editor.WithBell(func(op string) { s.bells = append(s.bells, op) }),
	)
	return s
}

// Editor returns the served editor. Callers must not use it while the
// server is handling requests.
func (s *Server) Editor() *editor.Editor { return s.editor }

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/document", s.locked(s.handleDocument))
	r.Get("/guides", s.locked(s.handleGuides))
	r.Get("/preview.svg", s.locked(s.handlePreview))

	r.Route("/elements", func(r chi.Router) {
		r.Post("/", s.locked(s.handleAdd))
		r.Route("/{ref}", func(r chi.Router) {
			r.Get("/", s.locked(s.handleGet))
			r.Delete("/", s.locked(s.handleDelete))
			r.Post("/align", s.locked(s.handleAlign))
			r.Post("/nudge", s.locked(s.handleNudge))
			r.Post("/front", s.locked(s.handleFront))
			r.Post("/back", s.locked(s.handleBack))
			r.Post("/rename", s.locked(s.handleRename))
			r.Post("/select", s.locked(s.handleSelect))
		})
	})

	r.Route("/pointer", func(r chi.Router) {
		r.Post("/down", s.locked(s.handlePointerDown))
		r.Post("/move", s.locked(s.handlePointerMove))
		r.Post("/up", s.locked(s.handlePointerUp))
	})
	r.Post("/cancel", s.locked(s.handleCancel))

	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// =============================================================================
// Middleware
// =============================================================================

func (s *Server) locked(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.bells = s.bells[:0]
		h(w, r)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond), "id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    herrors.Code `json:"code"`
	Message string       `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := herrors.GetCode(err)
	if code == "" {
		code = herrors.ErrCodeInternal
	}
	writeJSON(w, herrors.HTTPStatus(err), errorBody{Code: code, Message: herrors.UserMessage(err)})
}

func decode(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidInput, err, "invalid request body: %v", err)
	}
	return nil
}
