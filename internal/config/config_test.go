// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"STATLAB_BINS", "STATLAB_SMOOTHING", "STATLAB_PIE_CATEGORIES", "STATLAB_LANG", "DASHSCOPE_TIMEOUT", "DASHSCOPE_MODEL"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Chart.Bins)
	assert.Equal(t, 1.0, cfg.Chart.Smoothing)
	assert.Equal(t, 5, cfg.Chart.PieCategories)
	assert.Equal(t, "zh", cfg.Lang)
	assert.Equal(t, DefaultModel, cfg.AI.Model)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.NotEmpty(t, cfg.AI.KeystorePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STATLAB_BINS", "25")
	t.Setenv("STATLAB_SMOOTHING", "0.5")
	t.Setenv("STATLAB_LANG", "en")
	t.Setenv("DASHSCOPE_TIMEOUT", "5s")
	t.Setenv("STATLAB_PIE_CATEGORIES", "not a number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Chart.Bins)
	assert.Equal(t, 0.5, cfg.Chart.Smoothing)
	assert.Equal(t, 5, cfg.Chart.PieCategories)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("STATLAB_BINS", "0")
	_, err := Load()
	assert.ErrorContains(t, err, "STATLAB_BINS")

	t.Setenv("STATLAB_BINS", "")
	t.Setenv("STATLAB_SMOOTHING", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "STATLAB_SMOOTHING")
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATLAB_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("STATLAB_TEST_VALUE", "")
	os.Unsetenv("STATLAB_TEST_VALUE")
	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("STATLAB_TEST_VALUE"))
}
