// Package api serves the simulators and quizzes over HTTP as JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/logger"
	"github.com/todoscontam/finlab/internal/store"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Catalog *catalog.Catalog

	// Results persists submissions. Nil disables saving and the history
	// endpoints answer with an empty list.
	Results store.ResultRepo

	// Seed fixes quiz draws and diversification runs when set.
	Seed *uint64

	Log *logger.Logger
}

func (s *Server) logger() *logger.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logger.Default()
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)
	r.Use(recoveryMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)

		r.Get("/modules", s.handleModules)
		r.Get("/assets", s.handleAssets)

		r.Post("/simulate", s.handleSimulate)
		r.Post("/contribution", s.handleContribution)
		r.Post("/target", s.handleTarget)
		r.Post("/inflation", s.handleInflation)
		r.Post("/compare/earlier", s.handleCompareEarlier)
		r.Post("/compare/invest", s.handleCompareInvest)

		r.Post("/budget/split", s.handleBudgetSplit)
		r.Post("/budget/breakdown", s.handleBudgetBreakdown)
		r.Post("/budget/review", s.handleBudgetReview)
		r.Post("/budget/rate", s.handleBudgetRate)

		r.Post("/money/barter", s.handleBarter)
		r.Post("/money/save", s.handleSave)
		r.Post("/money/compare", s.handleComparePrices)
		r.Post("/value", s.handleValue)

		r.Get("/currencies", s.handleCurrencies)
		r.Post("/convert", s.handleConvert)
		r.Post("/diversify", s.handleDiversify)

		r.Get("/quizzes", s.handleListQuizzes)
		r.Get("/quizzes/{id}", s.handleGetQuiz)
		r.Post("/quizzes/{id}/submissions", s.handleSubmit)

		r.Get("/results", s.handleListResults)
		r.Get("/results/{id}", s.handleGetResult)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// ListenAndServe serves Routes on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger().Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}

// writeJSON encodes v before writing status so an encoding failure can still
// be answered with a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		handleError(w, r, NewInternalError(fmt.Errorf("encode response: %w", err)))
		return
	}
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
