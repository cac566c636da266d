package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayoisaiah/sculpt/internal/history"
	"github.com/ayoisaiah/sculpt/internal/library"
	"github.com/ayoisaiah/sculpt/internal/timeutil"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the workout history as a read-only JSON API. The history must
// not be modified while the server is running.
type Server struct {
	history *history.Store
	library *library.Library
	log     *slog.Logger
	router  chi.Router
	now     func() time.Time
	unit    string
}

// TemplateInfo is a workout template with its one-line preview.
type TemplateInfo struct {
	library.Template
	Summary string `json:"summary"`
}

// NewServer creates a new Server with all routes configured.
func NewServer(
	h *history.Store,
	lib *library.Library,
	unit string,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		history: h,
		library: lib,
		unit:    unit,
		log:     log,
		now:     time.Now,
		router:  chi.NewRouter(),
	}

	s.routes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(requestLogging(s.log))

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/history", s.handleHistory)
		r.Get("/records/{name}", s.handleRecord)
		r.Get("/library", s.handleLibrary)
	})
}

// ListenAndServe serves on localhost:port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	start, end, err := s.parseRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, Compute(s.history, s.library, Opts{
		StartTime: start,
		EndTime:   end,
		Unit:      s.unit,
	}))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	start, end, err := s.parseRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, Summarize(s.history.Between(start, end)))
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise name required"})
		return
	}

	writeJSON(w, http.StatusOK, Lookup(s.history, name, s.unit))
}

func (s *Server) handleLibrary(w http.ResponseWriter, _ *http.Request) {
	templates := s.library.Templates()

	infos := make([]TemplateInfo, 0, len(templates))
	for _, t := range templates {
		infos = append(infos, TemplateInfo{Template: t, Summary: t.Summary()})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"exercises": s.library.Exercises(),
		"templates": infos,
	})
}

// parseRange reads the period, start and end query parameters. Dates use the
// YYYY-MM-DD layout.
func (s *Server) parseRange(r *http.Request) (start, end time.Time, err error) {
	query := r.URL.Query()
	now := s.now()

	if p := query.Get("period"); p != "" {
		period := timeutil.Period(p)
		if _, ok := timeutil.Range[period]; !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", p)
		}

		start, end = timeutil.PeriodRange(period, now)

		return start, end, nil
	}

	if v := query.Get("start"); v != "" {
		start, err = time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", v)
		}
	}

	if v := query.Get("end"); v != "" {
		end, err = time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", v)
		}

		end = timeutil.RoundToEnd(end)
	}

	return start, end, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// requestLogging returns middleware that logs each request.
func requestLogging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.Debug("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
