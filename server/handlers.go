// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"encoding/json"
	"math"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/statteach/statlab/generate"
	"github.com/statteach/statlab/input"
	"github.com/statteach/statlab/insight"
	"github.com/statteach/statlab/internal/i18n"
	"github.com/statteach/statlab/session"
	"github.com/statteach/statlab/stats"
)

// analysisRequest is the body of the describe, estimate, chart and
// insight endpoints. Omitted settings take the server defaults.
type analysisRequest struct {
	Data          []float64 `json:"data"`
	Lang          string    `json:"lang,omitempty"`
	Family        string    `json:"family,omitempty"`
	Bins          *int      `json:"bins,omitempty"`
	Smoothing     *float64  `json:"smoothing,omitempty"`
	PieCategories *int      `json:"pieCategories,omitempty"`
}

type generateRequest struct {
	Family string           `json:"family"`
	Params *generate.Params `json:"params,omitempty"`
	Size   int              `json:"size,omitempty"`
	Seed   *uint64          `json:"seed,omitempty"`
}

type aiRequest struct {
	Prompt string `json:"prompt"`
	Size   int    `json:"size,omitempty"`
}

type dataResponse struct {
	Data []float64 `json:"data"`
}

type description struct {
	N        int       `json:"n"`
	Sum      float64   `json:"sum"`
	Mean     float64   `json:"mean"`
	Median   float64   `json:"median"`
	Mode     []float64 `json:"mode"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Range    float64   `json:"range"`
	Q1       float64   `json:"q1"`
	Q3       float64   `json:"q3"`
	IQR      float64   `json:"iqr"`
	Variance float64   `json:"variance"`
	StdDev   float64   `json:"std"`
	Skewness float64   `json:"skewness"`
	Kurtosis float64   `json:"kurtosis"`

	// CV is null when the mean is zero and the coefficient of
	// variation is infinite.
	CV         *float64 `json:"cv"`
	Degenerate bool     `json:"degenerate"`
}

func newDescription(d *stats.Description) description {
	out := description{
		N:          d.N,
		Sum:        d.Sum,
		Mean:       d.Mean,
		Median:     d.Median,
		Mode:       d.Mode,
		Min:        d.Min,
		Max:        d.Max,
		Range:      d.Range,
		Q1:         d.Q1,
		Q3:         d.Q3,
		IQR:        d.IQR,
		Variance:   d.Variance,
		StdDev:     d.StdDev,
		Skewness:   d.Skewness,
		Kurtosis:   d.Kurtosis,
		Degenerate: d.Degenerate,
	}
	if cv := d.CoefficientOfVariation; !math.IsInf(cv, 0) {
		out.CV = &cv
	}
	return out
}

type paramEstimate struct {
	Name                      string  `json:"name"`
	MLE                       float64 `json:"mle"`
	MoM                       float64 `json:"mom"`
	Difference                float64 `json:"difference"`
	RelativeDifferencePercent float64 `json:"relativeDifferencePercent"`
}

type estimation struct {
	Family    string          `json:"family"`
	Params    []paramEstimate `json:"params"`
	Agreement string          `json:"agreement"`
	Summary   string          `json:"summary"`
}

func newEstimation(e *stats.Estimation, p *message.Printer) estimation {
	a := insight.Compare(e)
	out := estimation{
		Family:    e.Family.String(),
		Agreement: a.String(),
		Summary:   a.Text(p),
	}
	for _, pe := range e.Params {
		out.Params = append(out.Params, paramEstimate(pe))
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	sess, _, err := s.decodeAnalysis(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := sess.Describe()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDescription(d))
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	sess, p, err := s.decodeAnalysis(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := sess.Estimate()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newEstimation(e, p))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	sess, _, err := s.decodeAnalysis(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	v, err := sess.Chart(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	sess, p, err := s.decodeAnalysis(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sample, _ := sess.Sample()
	rep, err := insight.Analyze(sample, p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	f, err := stats.ParseFamily(req.Family)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	params := generate.DefaultParams()
	if req.Params != nil {
		params = *req.Params
	}
	if req.Size == 0 {
		req.Size = generate.DefaultSize
	}
	var src rand.Source
	if req.Seed != nil {
		src = rand.NewPCG(*req.Seed, *req.Seed)
	}
	xs, err := generate.Sample(f, params, req.Size, src)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{xs})
}

func (s *Server) handleAI(w http.ResponseWriter, r *http.Request) {
	if s.gen == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{"AI generation is not configured", "ai_disabled"})
		return
	}
	var req aiRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Size == 0 {
		req.Size = generate.DefaultSize
	}
	xs, err := s.gen.Generate(r.Context(), req.Prompt, req.Size)
	if err != nil {
		if _, _, ok := classify(err); !ok {
			err = upstreamError{err}
		}
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{xs})
}

// handleParse reads the multipart "file" field with input.ParseFile
// and returns the numbers it holds.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	f, hdr, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, requestError(err))
		return
	}
	defer f.Close()
	xs, err := input.ParseFile(hdr.Filename, f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{xs})
}

// decodeAnalysis reads an analysisRequest and returns a session
// holding its sample, and a printer for its language.
func (s *Server) decodeAnalysis(r *http.Request) (*session.Session, *message.Printer, error) {
	var req analysisRequest
	if err := decode(r, &req); err != nil {
		return nil, nil, err
	}

	settings := s.defaults
	if req.Family != "" {
		f, err := stats.ParseFamily(req.Family)
		if err != nil {
			return nil, nil, err
		}
		settings.Family = f
	}
	if req.Bins != nil {
		settings.Bins = *req.Bins
	}
	if req.Smoothing != nil {
		settings.Smoothing = *req.Smoothing
	}
	if req.PieCategories != nil {
		settings.PieCategories = *req.PieCategories
	}
	switch {
	case req.Lang != "":
		settings.Lang = req.Lang
	case r.Header.Get("Accept-Language") != "":
		settings.Lang = r.Header.Get("Accept-Language")
	}

	sess, err := session.New(settings)
	if err != nil {
		return nil, nil, err
	}
	if err := sess.Replace(req.Data); err != nil {
		return nil, nil, err
	}
	return sess, i18n.NewPrinter(settings.Lang), nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return requestError(err)
	}
	return nil
}

// requestError classifies a failure to read the request body: bodies
// cut off by limitBody report input.ErrTooLarge, anything else is a
// malformed request.
func requestError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Wrap(input.ErrTooLarge, err.Error())
	}
	return errors.Wrap(errBadRequest, err.Error())
}

// writeJSON writes v with the given status. If v cannot be encoded,
// for example because it holds NaN, it writes a 500 error instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		json.NewEncoder(&buf).Encode(errorResponse{Error: "encoding response: " + err.Error(), Code: "internal"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
