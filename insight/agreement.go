// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package insight

import (
	"math"

	"golang.org/x/text/message"

	"github.com/statteach/statlab/stats"
)

// An Agreement grades how closely the MLE and MoM columns of an
// estimation agree.
type Agreement int

const (
	// Identical: every relative difference is under 0.1%.
	Identical Agreement = iota
	// Close: every relative difference is under 5%.
	Close
	// Moderate: every relative difference is under 20%.
	Moderate
	// Divergent: some relative difference is 20% or more.
	Divergent
)

// Compare grades e by its largest relative difference.
func Compare(e *stats.Estimation) Agreement {
	max := 0.0
	for _, p := range e.Params {
		max = math.Max(max, p.RelativeDifferencePercent)
	}
	switch {
	case max < 0.1:
		return Identical
	case max < 5:
		return Close
	case max < 20:
		return Moderate
	}
	return Divergent
}

var agreementText = [...]string{
	Identical: "MLE and MoM estimates are almost identical, indicating that the data fit the selected distribution well.",
	Close:     "MLE and MoM estimates are very close; the difference is within an acceptable range.",
	Moderate:  "MLE and MoM estimates differ somewhat; consider whether the data fully fit the selected distribution.",
	Divergent: "MLE and MoM estimates differ considerably; check the data distribution or try another distribution model.",
}

// Text returns the explanation of a, written with p.
func (a Agreement) Text(p *message.Printer) string {
	return p.Sprintf(agreementText[a])
}

var agreementNames = [...]string{
	Identical: "identical",
	Close:     "close",
	Moderate:  "moderate",
	Divergent: "divergent",
}

func (a Agreement) String() string {
	return agreementNames[a]
}
