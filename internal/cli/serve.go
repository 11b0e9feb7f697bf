package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/anagraph/anagraph/pkg/errors"
	"github.com/anagraph/anagraph/pkg/mis"
	"github.com/anagraph/anagraph/pkg/pipeline"
	"github.com/anagraph/anagraph/pkg/render"
)

// serveCommand creates the serve command for running the HTTP scoring API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scoring API",
		Long: `Run the HTTP scoring API.

Endpoints:
  GET /api/score?a=WORD&b=WORD      score a pair, JSON response
  GET /api/graph.dot?a=WORD&b=WORD  conflict graph as Graphviz DOT
  GET /healthz                      liveness probe

Scoring uses the same cache as the CLI commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	api := &apiServer{runner: runner, cli: c}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)
	r.Get("/healthz", api.handleHealth)
	r.Get("/api/score", api.handleScore)
	r.Get("/api/graph.dot", api.handleGraphDOT)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs each request with method, path, and duration.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		c.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// apiServer holds the handlers' shared state.
type apiServer struct {
	runner *pipeline.Runner
	cli    *CLI
}

// apiError is the JSON error envelope.
type apiError struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *apiServer) handleScore(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.pairOptions(w, r)
	if !ok {
		return
	}

	result, err := s.runner.ScorePair(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *apiServer) handleGraphDOT(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.pairOptions(w, r)
	if !ok {
		return
	}

	g, err := s.runner.BuildGraph(opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	fmt.Fprint(w, render.ToDOT(g, nil, render.Options{Name: "conflicts"}))
}

// pairOptions extracts and validates the word pair from query parameters.
// On failure it writes the error response and returns ok=false.
func (s *apiServer) pairOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	opts := pipeline.Options{
		WordA:   r.URL.Query().Get("a"),
		WordB:   r.URL.Query().Get("b"),
		Refresh: r.URL.Query().Get("refresh") == "true",
		Logger:  s.cli.Logger,
	}
	opts.Budget = s.cli.Config.BudgetDuration(pipeline.DefaultBudget)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return pipeline.Options{}, false
	}
	return opts, true
}

// writeError maps an error to a status code and writes the JSON envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)

	switch {
	case stderrors.Is(err, mis.ErrSearchTimeout):
		status = http.StatusGatewayTimeout
		code = errors.ErrCodeTimeout
	case code == errors.ErrCodeInvalidWord, code == errors.ErrCodeInvalidInput, code == errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case code == "":
		code = errors.ErrCodeInternal
	}

	writeJSON(w, status, apiError{Code: code, Message: errors.UserMessage(err)})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
