// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes the statlab analyses over HTTP.
//
// Every request carries its own sample. The server keeps no state
// between requests: each handler builds a session from the request
// body, runs one analysis and writes the result as JSON.
package server // import "github.com/statteach/statlab/server"

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/statteach/statlab/ai"
	"github.com/statteach/statlab/input"
	"github.com/statteach/statlab/session"
)

// maxBodySize bounds request bodies, uploads included.
const maxBodySize = input.MaxFileSize + 1<<20

// shutdownTimeout is how long ListenAndServe waits for in-flight
// requests after its context is canceled.
const shutdownTimeout = 10 * time.Second

// Server is the statlab HTTP API.
type Server struct {
	router   chi.Router
	defaults session.Settings
	gen      ai.Generator
	log      logrus.FieldLogger
}

// New returns a server whose requests start from the given default
// settings. gen serves /api/ai; if it is nil that endpoint replies
// 503.
func New(defaults session.Settings, gen ai.Generator, log logrus.FieldLogger) (*Server, error) {
	if err := defaults.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid default settings")
	}
	s := &Server{
		router:   chi.NewRouter(),
		defaults: defaults,
		gen:      gen,
		log:      log,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Use(limitBody)
		r.Post("/describe", s.handleDescribe)
		r.Post("/estimate", s.handleEstimate)
		r.Post("/chart/{kind}", s.handleChart)
		r.Post("/insight", s.handleInsight)
		r.Post("/generate", s.handleGenerate)
		r.Post("/ai", s.handleAI)
		r.Post("/parse", s.handleParse)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	s.log.Info("server stopped")
	return nil
}

// logRequests logs one record per request with its status and
// latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"elapsed":    time.Since(start),
			}).Debug("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		next.ServeHTTP(w, r)
	})
}
