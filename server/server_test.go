// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"context"
	"math"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/statteach/statlab/ai"
	statlog "github.com/statteach/statlab/internal/log"
	"github.com/statteach/statlab/session"
)

type generatorFunc func(ctx context.Context, prompt string, n int) ([]float64, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string, n int) ([]float64, error) {
	return f(ctx, prompt, n)
}

func newTestServer(t *testing.T, gen ai.Generator) *Server {
	t.Helper()
	s, err := New(session.DefaultSettings(), gen, statlog.Discard())
	require.NoError(t, err)
	return s
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, code, gjson.Get(rec.Body.String(), "code").String())
	assert.NotEmpty(t, gjson.Get(rec.Body.String(), "error").String())
}

func TestHealth(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
}

func TestDescribe(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(s, http.MethodPost, "/api/describe", `{"data":[1,2,3,4]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Equal(t, int64(4), gjson.Get(body, "n").Int())
	assert.Equal(t, 2.5, gjson.Get(body, "mean").Float())
	assert.Equal(t, 1.25, gjson.Get(body, "variance").Float())
	assert.True(t, gjson.Get(body, "cv").Exists())
	assert.False(t, gjson.Get(body, "degenerate").Bool())

	// A zero mean with spread has an infinite coefficient of variation.
	rec = do(s, http.MethodPost, "/api/describe", `{"data":[-1,1]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gjson.Null, gjson.Get(rec.Body.String(), "cv").Type)

	rec = do(s, http.MethodPost, "/api/describe", `{"data":[7,7,7]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "degenerate").Bool())
	assert.Equal(t, 0.0, gjson.Get(rec.Body.String(), "skewness").Float())
}

func TestDescribeErrors(t *testing.T) {
	s := newTestServer(t, nil)
	assertError(t, do(s, http.MethodPost, "/api/describe", `{"data":[]}`), http.StatusBadRequest, "empty_sample")
	assertError(t, do(s, http.MethodPost, "/api/describe", `{"data":`), http.StatusBadRequest, "bad_request")
	assertError(t, do(s, http.MethodPost, "/api/describe", `{"data":[1],"family":"cauchy"}`), http.StatusBadRequest, "unknown_family")
	assertError(t, do(s, http.MethodPost, "/api/describe", `{"data":[1],"smoothing":0}`), http.StatusBadRequest, "zero_bandwidth")

	rec := do(s, http.MethodGet, "/api/describe", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	huge := `{"data":[` + strings.Repeat("1,", 6<<20) + `1]}`
	assertError(t, do(s, http.MethodPost, "/api/describe", huge), http.StatusRequestEntityTooLarge, "too_large")
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"x": math.NaN()})
	assertError(t, rec, http.StatusInternalServerError, "internal")
}

func TestEstimate(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(s, http.MethodPost, "/api/estimate", `{"data":[1,2,3,4],"family":"normal","lang":"en"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Equal(t, "normal", gjson.Get(body, "family").String())
	assert.Equal(t, []string{"mean", "variance", "std"}, stringsOf(gjson.Get(body, "params.#.name")))
	assert.Equal(t, 2.5, gjson.Get(body, "params.0.mle").Float())
	assert.Equal(t, "identical", gjson.Get(body, "agreement").String())
	assert.True(t, strings.HasPrefix(gjson.Get(body, "summary").String(), "MLE and MoM estimates are almost identical"))

	// The default language is Chinese.
	rec = do(s, http.MethodPost, "/api/estimate", `{"data":[1,2,3,4]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, strings.HasPrefix(gjson.Get(rec.Body.String(), "summary").String(), "MLE and MoM"))

	assertError(t, do(s, http.MethodPost, "/api/estimate", `{"data":[0,0],"family":"exponential"}`), http.StatusBadRequest, "degenerate")
	assertError(t, do(s, http.MethodPost, "/api/estimate", `{"data":[1e-320],"family":"exponential"}`), http.StatusBadRequest, "degenerate")
}

func TestEstimateAcceptLanguage(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(`{"data":[1,2,3,4]}`))
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(gjson.Get(rec.Body.String(), "summary").String(), "MLE and MoM"))
}

func TestChart(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(s, http.MethodPost, "/api/chart/histogram", `{"data":[1,2,3,4,5],"bins":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Equal(t, int64(2), gjson.Get(body, "#").Int())
	assert.Equal(t, []string{"2", "3"}, stringsOf(gjson.Get(body, "#.count")))
	assert.Equal(t, 3.0, gjson.Get(body, "0.hi").Float())

	rec = do(s, http.MethodPost, "/api/chart/boxplot", `{"data":[1,2,3,4,5,6,7,8,9,100]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5.5, gjson.Get(rec.Body.String(), "median").Float())
	assert.Equal(t, []string{"100"}, stringsOf(gjson.Get(rec.Body.String(), "outliers")))

	for _, kind := range session.Kinds {
		rec := do(s, http.MethodPost, "/api/chart/"+kind, `{"data":[1,2,2,3,3,3,4,4,5,9]}`)
		assert.Equal(t, http.StatusOK, rec.Code, "%s: %s", kind, rec.Body.String())
	}

	assertError(t, do(s, http.MethodPost, "/api/chart/violin", `{"data":[1,2]}`), http.StatusNotFound, "unknown_chart")
	assertError(t, do(s, http.MethodPost, "/api/chart/histogram", `{"data":[1,2],"bins":0}`), http.StatusBadRequest, "bin_count")
	assertError(t, do(s, http.MethodPost, "/api/chart/density", `{"data":[3,3,3]}`), http.StatusBadRequest, "zero_bandwidth")
}

func TestInsight(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(s, http.MethodPost, "/api/insight", `{"data":[1,2,3,4,5,6,7,8,9,100],"lang":"en"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.NotEmpty(t, gjson.Get(body, "features").Array())
	assert.NotEmpty(t, gjson.Get(body, "source").String())
	assert.Equal(t, int64(1), gjson.Get(body, "outliers").Int())
}

func TestGenerate(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"family":"normal","params":{"mean":10,"std":2},"size":50,"seed":7}`
	a := do(s, http.MethodPost, "/api/generate", body)
	require.Equal(t, http.StatusOK, a.Code, a.Body.String())
	assert.Equal(t, int64(50), gjson.Get(a.Body.String(), "data.#").Int())
	b := do(s, http.MethodPost, "/api/generate", body)
	assert.Equal(t, a.Body.String(), b.Body.String())

	rec := do(s, http.MethodPost, "/api/generate", `{"family":"poisson"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(100), gjson.Get(rec.Body.String(), "data.#").Int())

	assertError(t, do(s, http.MethodPost, "/api/generate", `{"family":"normal","size":5}`), http.StatusBadRequest, "invalid_params")
	assertError(t, do(s, http.MethodPost, "/api/generate", `{"family":"normal","params":{"std":-1}}`), http.StatusBadRequest, "invalid_params")
	assertError(t, do(s, http.MethodPost, "/api/generate", `{"family":"zipf"}`), http.StatusBadRequest, "unknown_family")
}

func TestAI(t *testing.T) {
	s := newTestServer(t, ai.MockGenerator{Src: rand.NewPCG(1, 2)})
	rec := do(s, http.MethodPost, "/api/ai", `{"prompt":"exam scores","size":20}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(20), gjson.Get(rec.Body.String(), "data.#").Int())

	assertError(t, do(s, http.MethodPost, "/api/ai", `{"prompt":"  "}`), http.StatusBadRequest, "empty_prompt")

	assertError(t, do(newTestServer(t, nil), http.MethodPost, "/api/ai", `{"prompt":"x"}`), http.StatusServiceUnavailable, "ai_disabled")

	failing := generatorFunc(func(ctx context.Context, prompt string, n int) ([]float64, error) {
		return nil, errors.New("DashScope returned 500")
	})
	assertError(t, do(newTestServer(t, failing), http.MethodPost, "/api/ai", `{"prompt":"x"}`), http.StatusBadGateway, "upstream")

	missing := generatorFunc(func(ctx context.Context, prompt string, n int) ([]float64, error) {
		return nil, ai.ErrMissingKey
	})
	assertError(t, do(newTestServer(t, missing), http.MethodPost, "/api/ai", `{"prompt":"x"}`), http.StatusServiceUnavailable, "missing_key")
}

func TestParse(t *testing.T) {
	s := newTestServer(t, nil)

	upload := func(name, content string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		fw.Write([]byte(content))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/parse", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		return rec
	}

	rec := upload("data.csv", "value\n1.5\n2\n-3\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"1.5", "2", "-3"}, stringsOf(gjson.Get(rec.Body.String(), "data")))

	assertError(t, upload("data.csv", "header only\n"), http.StatusBadRequest, "no_numbers")
	assertError(t, upload("old.xls", "x"), http.StatusBadRequest, "unsupported_format")
	assertError(t, upload("big.csv", "value\n"+strings.Repeat("1\n", 6<<20)), http.StatusRequestEntityTooLarge, "too_large")
	assertError(t, do(s, http.MethodPost, "/api/parse", `{}`), http.StatusBadRequest, "bad_request")
}

func TestNewRejectsBadDefaults(t *testing.T) {
	settings := session.DefaultSettings()
	settings.Bins = 0
	_, err := New(settings, nil, statlog.Discard())
	assert.Error(t, err)
}

func stringsOf(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		out = append(out, v.Raw)
	}
	return out
}
