// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ai generates example samples from a natural-language
// description, either with the DashScope text generation service or
// with a local mock.
package ai // import "github.com/statteach/statlab/ai"

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/statteach/statlab/generate"
	"github.com/statteach/statlab/input"
)

var (
	// ErrMissingKey is returned by Client.Generate when no API key
	// is configured.
	ErrMissingKey = errors.New("DashScope API key is not set")

	// ErrEmptyPrompt is returned when the prompt is blank.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrBadResponse is returned when the service replies without
	// generated text.
	ErrBadResponse = errors.New("unexpected DashScope response format")
)

// A Generator produces up to n numbers described by prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, n int) ([]float64, error)
}

// instruction is appended to every prompt so the model replies with a
// bare list of numbers.
const instruction = "\n\n请以数组格式返回结果，只包含数字，不要其他说明文字。例如：[1.2, 3.4, 5.6]"

// Request parameters sent with every generation.
const (
	maxNewTokens = 2000
	temperature  = 0.1
)

// maxResponseSize bounds the response body the client will read.
const maxResponseSize = 1 << 20

// Client calls the DashScope text generation API.
type Client struct {
	Endpoint string
	Model    string
	APIKey   string

	HTTPClient *http.Client
	Log        logrus.FieldLogger
}

// NewClient returns a client for endpoint and model whose requests
// time out after timeout.
func NewClient(endpoint, model, apiKey string, timeout time.Duration, log logrus.FieldLogger) *Client {
	return &Client{
		Endpoint:   endpoint,
		Model:      model,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        log,
	}
}

type request struct {
	Model string `json:"model"`
	Input struct {
		Prompt string `json:"prompt"`
	} `json:"input"`
	Parameters struct {
		MaxNewTokens int     `json:"max_new_tokens"`
		Temperature  float64 `json:"temperature"`
	} `json:"parameters"`
}

// Generate asks the model for numbers matching prompt and returns at
// most n of them.
func (c *Client) Generate(ctx context.Context, prompt string, n int) ([]float64, error) {
	if err := checkRequest(prompt, n); err != nil {
		return nil, err
	}
	if c.APIKey == "" {
		return nil, ErrMissingKey
	}

	var req request
	req.Model = c.Model
	req.Input.Prompt = prompt + instruction
	req.Parameters.MaxNewTokens = maxNewTokens
	req.Parameters.Temperature = temperature
	body, err := json.Marshal(&req)
	if err != nil {
		return nil, errors.Wrap(err, "encoding request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	log := c.logger().WithField("model", c.Model)
	start := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "calling DashScope")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "reading DashScope response")
	}
	log = log.WithField("status", resp.StatusCode).WithField("elapsed", time.Since(start))
	if resp.StatusCode/100 != 2 {
		log.Warn("DashScope request failed")
		if msg := gjson.GetBytes(data, "message").String(); msg != "" {
			return nil, errors.Errorf("DashScope returned %d: %s", resp.StatusCode, msg)
		}
		return nil, errors.Errorf("DashScope returned %d", resp.StatusCode)
	}

	text := gjson.GetBytes(data, "output.text")
	if text.Type != gjson.String || text.Str == "" {
		return nil, ErrBadResponse
	}
	log.Debug("DashScope request succeeded")

	xs, err := input.ExtractNumbers(text.Str)
	if err != nil {
		return nil, errors.Wrap(err, "reading generated numbers")
	}
	return truncate(xs, n), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// MockGenerator generates data locally with generate.Mock, without a
// network call or API key.
type MockGenerator struct {
	// Src is the random source. If nil, a randomly seeded source
	// is used.
	Src rand.Source
}

// Generate ignores the content of prompt, which must still be
// non-blank, and returns n mock values.
func (m MockGenerator) Generate(ctx context.Context, prompt string, n int) ([]float64, error) {
	if err := checkRequest(prompt, n); err != nil {
		return nil, err
	}
	return generate.Mock(n, m.Src), nil
}

func checkRequest(prompt string, n int) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	if n < generate.MinSize || n > generate.MaxSize {
		return errors.Wrapf(generate.ErrInvalidParams, "sample size must be between %d and %d", generate.MinSize, generate.MaxSize)
	}
	return nil
}

func truncate(xs []float64, n int) []float64 {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}
