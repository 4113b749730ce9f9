// Copyright 2026 Marko Milivojevic
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"strings"
	"time"
)

const (
	// DefaultSecondsAgo is shown for timestamps less than JustNow in the past.
	DefaultSecondsAgo = "seconds ago"

	// JustNow is the age below which no relative phrase is computed.
	JustNow = 60 * time.Second

	// MinResolution and Transition configure the RelativeSource: phrases are
	// never finer than a second, and from a week on they become dates.
	MinResolution = time.Second
	Transition    = 7 * 24 * time.Hour
)

// DateFormatter renders an absolute, locale-aware date and time.
type DateFormatter interface {
	Format(t time.Time) string
}

// RelativeSource produces a relative phrase for t as seen from now. The
// phrase may be compound, e.g. "3 days ago, 14:02".
type RelativeSource interface {
	RelativeDateTime(now, t time.Time, minResolution, transition time.Duration) string
}

// PhraseReducer post-processes a RelativeSource phrase.
type PhraseReducer func(phrase string) string

// DropTimeOfDay reduces "3 days ago, 14:02" to "3 days ago". It only acts
// when the phrase has exactly two comma-separated parts and exactly one of
// them holds a colon; anything else is returned unchanged.
func DropTimeOfDay(phrase string) string {
	parts := splitFields(phrase, ",")
	if len(parts) != 2 {
		return phrase
	}
	firstHasTime := strings.Contains(parts[0], ":")
	secondHasTime := strings.Contains(parts[1], ":")
	switch {
	case secondHasTime && !firstHasTime:
		return strings.TrimSpace(parts[0])
	case firstHasTime && !secondHasTime:
		return strings.TrimSpace(parts[1])
	}
	return phrase
}

// Timestamps formats epoch-millisecond timestamps.
type Timestamps struct {
	SecondsAgo string
	Absolute   DateFormatter
	Source     RelativeSource
	Reduce     PhraseReducer
	Now        func() time.Time
}

// NewTimestamps returns a Timestamps that formats dates with dates, using
// HumanRelative phrases, DropTimeOfDay and the wall clock.
func NewTimestamps(dates LocaleDates) *Timestamps {
	return &Timestamps{
		SecondsAgo: DefaultSecondsAgo,
		Absolute:   dates,
		Source:     HumanRelative{Dates: dates},
		Reduce:     DropTimeOfDay,
		Now:        time.Now,
	}
}

// FormatAbsolute formats epochMillis with the absolute date formatter.
func (ts *Timestamps) FormatAbsolute(epochMillis int64) string {
	return ts.Absolute.Format(time.UnixMilli(epochMillis))
}

// FormatRelative picks the display string for epochMillis as seen at
// nowMillis. Future timestamps are shown as absolute dates.
func (ts *Timestamps) FormatRelative(nowMillis, epochMillis int64) string {
	if epochMillis > nowMillis {
		return ts.FormatAbsolute(epochMillis)
	}
	if nowMillis-epochMillis < JustNow.Milliseconds() {
		return ts.SecondsAgo
	}

	phrase := ts.Source.RelativeDateTime(time.UnixMilli(nowMillis), time.UnixMilli(epochMillis),
		MinResolution, Transition)
	if ts.Reduce == nil {
		return phrase
	}
	return ts.Reduce(phrase)
}

// Relative is FormatRelative against the current time.
func (ts *Timestamps) Relative(epochMillis int64) string {
	now := time.Now
	if ts.Now != nil {
		now = ts.Now
	}
	return ts.FormatRelative(now().UnixMilli(), epochMillis)
}
