// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"regexp"

	"github.com/tidwall/gjson"
)

var (
	bracketListRE = regexp.MustCompile(`\[([^\]]+)\]`)
	listSepRE     = regexp.MustCompile(`[,\s]+`)
	dataObjectRE  = regexp.MustCompile(`\{[^}]*"data"[^}]*\}`)
	numberRE      = regexp.MustCompile(`-?\d+\.?\d*`)
)

// ExtractNumbers pulls a sample out of free-form text. It tries, in
// order:
//
//   - the first bracketed list, such as "[1.2, 3.4, 5.6]";
//   - a JSON object with a "data" array, such as {"data": [1, 2]};
//   - every number literal in the text.
//
// The first form that yields at least one number wins. If none does,
// ExtractNumbers returns ErrNoNumbers.
func ExtractNumbers(text string) ([]float64, error) {
	if m := bracketListRE.FindStringSubmatch(text); m != nil {
		var xs []float64
		for _, f := range listSepRE.Split(m[1], -1) {
			if x, ok := parseNumber(f); ok {
				xs = append(xs, x)
			}
		}
		if len(xs) > 0 {
			return xs, nil
		}
	}

	if m := dataObjectRE.FindString(text); m != "" && gjson.Valid(m) {
		var xs []float64
		for _, v := range gjson.Get(m, "data").Array() {
			switch v.Type {
			case gjson.Number:
				xs = append(xs, v.Num)
			case gjson.String:
				if x, ok := parseNumber(v.Str); ok {
					xs = append(xs, x)
				}
			}
		}
		if len(xs) > 0 {
			return xs, nil
		}
	}

	var xs []float64
	for _, f := range numberRE.FindAllString(text, -1) {
		if x, ok := parseNumber(f); ok {
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return nil, ErrNoNumbers
	}
	return xs, nil
}
