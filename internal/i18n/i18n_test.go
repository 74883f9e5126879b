// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	for in, want := range map[string]language.Tag{
		"":                    language.Chinese,
		"zh":                  language.Chinese,
		"zh-CN":               language.Chinese,
		"en":                  language.English,
		"en-US":               language.English,
		"fr-CH, en;q=0.8":     language.English,
		"!!not a tag!!":       language.Chinese,
		"zh-Hans-CN,en;q=0.5": language.Chinese,
	} {
		assert.Equal(t, want, Match(in), "Match(%q)", in)
	}
}

func TestRegister(t *testing.T) {
	Register(language.Chinese, map[string]string{"Test Greeting %d%%": "测试问候 %d%%"})
	assert.Equal(t, "测试问候 5%", NewPrinter("zh").Sprintf("Test Greeting %d%%", 5))
	assert.Equal(t, "Test Greeting 5%", NewPrinter("en").Sprintf("Test Greeting %d%%", 5))
}
