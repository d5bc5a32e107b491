package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/elitelau/frog-leap-problem/pkg/buildinfo"
	"github.com/elitelau/frog-leap-problem/pkg/cache"
	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
	pkgio "github.com/elitelau/frog-leap-problem/pkg/io"
	"github.com/elitelau/frog-leap-problem/pkg/observability"
	"github.com/elitelau/frog-leap-problem/pkg/render"
	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solutions over HTTP",
		Long: `Solve the puzzle once and serve the result:

  GET /healthz               build information
  GET /solutions             every solution with run statistics (JSON)
  GET /solutions/{n}         solution n as text, or JSON with ?format=json
  GET /solutions/{n}/dot     solution n as Graphviz DOT
  GET /solutions/{n}/svg     solution n as SVG`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, localhost:8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	res, err := search.Run(ctx, search.WithLogger(logger))
	if err != nil {
		return err
	}
	store, err := c.openCache(ctx, formatSVG, noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(res, store, c.cfg.Cache.TTL.Duration, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	printSuccess("Serving %d solutions", len(res.Solutions))
	printDetail("http://%s/solutions", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// Handlers
// =============================================================================

type server struct {
	res    *search.Result
	store  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

func newServer(res *search.Result, store cache.Cache, ttl time.Duration, logger *log.Logger) *server {
	return &server{res: res, store: store, ttl: ttl, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observeRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/solutions", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{n}", func(r chi.Router) {
			r.Get("/", s.handleSolution)
			r.Get("/dot", s.handleDOT)
			r.Get("/svg", s.handleSVG)
		})
	})
	return r
}

// observeRequests reports every request to the HTTP hooks.
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"build":     buildinfo.Get(),
		"run_id":    s.res.RunID,
		"solutions": len(s.res.Solutions),
	})
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteJSON(s.res, w); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *server) handleSolution(w http.ResponseWriter, r *http.Request) {
	sol, ok := s.solution(w, r)
	if !ok {
		return
	}

	format := formatText
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := apperr.ValidateFormat(q, solveFormats)
		if err != nil {
			writeError(w, err)
			return
		}
		format = f
	}

	var err error
	if format == formatJSON {
		w.Header().Set("Content-Type", "application/json")
		err = pkgio.WriteSolutionJSON(sol, w)
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		err = solution.WriteText(w, sol)
	}
	if err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *server) handleDOT(w http.ResponseWriter, r *http.Request) {
	sol, ok := s.solution(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(render.ToDOT([]solution.Solution{sol}, detailedOption(r))))
}

func (s *server) handleSVG(w http.ResponseWriter, r *http.Request) {
	sol, ok := s.solution(w, r)
	if !ok {
		return
	}
	dot := render.ToDOT([]solution.Solution{sol}, detailedOption(r))
	svg, cached, err := renderSVGCached(withLogger(r.Context(), s.logger), s.store, dot, s.ttl)
	if err != nil {
		writeError(w, apperr.Wrap(apperr.ErrCodeInternal, err, "render svg"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(svg)
}

// solution resolves the {n} path parameter, writing the error response
// itself when it is invalid.
func (s *server) solution(w http.ResponseWriter, r *http.Request) (solution.Solution, bool) {
	i, err := apperr.ParseSolutionIndex(chi.URLParam(r, "n"), len(s.res.Solutions))
	if err != nil {
		writeError(w, err)
		return solution.Solution{}, false
	}
	return s.res.Solutions[i], true
}

func detailedOption(r *http.Request) render.Options {
	return render.Options{Detailed: r.URL.Query().Get("detailed") == "true"}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := apperr.GetCode(err)
	if code == "" {
		code = apperr.ErrCodeInternal
	}
	writeJSON(w, apperr.HTTPStatus(err), map[string]string{
		"error":   string(code),
		"message": apperr.UserMessage(err),
	})
}
