// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i18n selects the report language and translates statlab's
// user-facing text.
//
// Message keys are the English text. Packages that own user-facing
// text register their Chinese translations with Register; printers
// for English fall back to the key itself.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the report languages. The first is the default.
var Supported = []language.Tag{language.Chinese, language.English}

var matcher = language.NewMatcher(Supported)

// Match returns the supported language that best matches lang, which
// may be a BCP 47 tag ("en-US") or an Accept-Language value. It
// returns the default language if lang is empty or unparsable.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, i, _ := matcher.Match(tags...)
	return Supported[i]
}

// NewPrinter returns a printer for the supported language best
// matching lang.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang))
}

// Register adds translations for tag, keyed by English text.
//
// Keys are format strings, so a literal percent sign is written %%.
func Register(tag language.Tag, entries map[string]string) {
	for key, msg := range entries {
		if err := message.SetString(tag, key, msg); err != nil {
			panic("i18n: registering " + key + ": " + err.Error())
		}
	}
}
