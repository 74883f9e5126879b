// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/statteach/statlab/ai"
	"github.com/statteach/statlab/chart"
	"github.com/statteach/statlab/generate"
	"github.com/statteach/statlab/input"
	"github.com/statteach/statlab/session"
	"github.com/statteach/statlab/stats"
)

// errBadRequest is returned for bodies that are not valid JSON or
// multipart forms.
var errBadRequest = errors.New("malformed request")

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// upstreamError marks a failure of the AI service itself.
type upstreamError struct{ err error }

func (e upstreamError) Error() string { return e.err.Error() }
func (e upstreamError) Unwrap() error { return e.err }

// errorCodes maps the sentinel errors of the statlab packages to an
// HTTP status and a stable machine-readable code. The first match
// wins.
var errorCodes = []struct {
	err    error
	status int
	code   string
}{
	{errBadRequest, http.StatusBadRequest, "bad_request"},
	{stats.ErrEmptySample, http.StatusBadRequest, "empty_sample"},
	{stats.ErrNonFinite, http.StatusBadRequest, "non_finite"},
	{stats.ErrUnknownFamily, http.StatusBadRequest, "unknown_family"},
	{stats.ErrDegenerate, http.StatusBadRequest, "degenerate"},
	{chart.ErrBinCount, http.StatusBadRequest, "bin_count"},
	{chart.ErrZeroBandwidth, http.StatusBadRequest, "zero_bandwidth"},
	{generate.ErrInvalidParams, http.StatusBadRequest, "invalid_params"},
	{input.ErrNoNumbers, http.StatusBadRequest, "no_numbers"},
	{input.ErrUnsupportedFormat, http.StatusBadRequest, "unsupported_format"},
	{input.ErrTooLarge, http.StatusRequestEntityTooLarge, "too_large"},
	{ai.ErrEmptyPrompt, http.StatusBadRequest, "empty_prompt"},
	{ai.ErrMissingKey, http.StatusServiceUnavailable, "missing_key"},
	{ai.ErrBadResponse, http.StatusBadGateway, "bad_upstream_response"},
	{session.ErrUnknownChart, http.StatusNotFound, "unknown_chart"},
}

func classify(err error) (status int, code string, ok bool) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.status, c.code, true
		}
	}
	var up upstreamError
	if errors.As(err, &up) {
		return http.StatusBadGateway, "upstream", true
	}
	return http.StatusInternalServerError, "internal", false
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, _ := classify(err)
	log := s.log.WithField("request_id", middleware.GetReqID(r.Context())).WithError(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.Debug("request rejected")
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
