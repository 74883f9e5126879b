// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keystore persists the DashScope API key in a local dotenv
// file.
package keystore // import "github.com/statteach/statlab/keystore"

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Key is the name under which the API key is stored.
const Key = "dashscopeApiKey"

// A Store is a dotenv file holding the API key. Other entries in the
// file are preserved.
type Store struct {
	Path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) read() (map[string]string, error) {
	env, err := godotenv.Read(s.Path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "reading key store %s", s.Path)
	}
	return env, nil
}

// Get returns the stored API key, or "" if none is stored.
func (s *Store) Get() (string, error) {
	env, err := s.read()
	if err != nil {
		return "", err
	}
	return env[Key], nil
}

// Set stores key, replacing any previous key. Setting an empty key
// removes the stored key.
func (s *Store) Set(key string) error {
	env, err := s.read()
	if err != nil {
		return err
	}
	if key = strings.TrimSpace(key); key == "" {
		if _, ok := env[Key]; !ok {
			return nil
		}
		delete(env, Key)
	} else {
		env[Key] = key
	}
	return s.write(env)
}

// Clear removes the stored key.
func (s *Store) Clear() error {
	return s.Set("")
}

func (s *Store) write(env map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return errors.Wrap(err, "creating key store directory")
	}
	if err := godotenv.Write(env, s.Path); err != nil {
		return errors.Wrapf(err, "writing key store %s", s.Path)
	}
	return errors.Wrap(os.Chmod(s.Path, 0o600), "restricting key store permissions")
}

// Mask returns key with all but its last four characters hidden, for
// display.
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
