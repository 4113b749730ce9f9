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

package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Config holds configuration for progress tracking
type Config struct {
	Description string    // Description of the operation
	Total       int64     // Total items to process (0 for indeterminate)
	Enabled     bool      // Only true when --verbose flag is set
	Writer      io.Writer // Defaults to stderr
}

// Counter tracks processed items, optionally rendering a progress bar.
// It is safe for concurrent use.
type Counter struct {
	bar *progressbar.ProgressBar
}

// NewCounter creates a new item counter.
// If cfg.Enabled is false, the counter is a no-op.
func NewCounter(cfg Config) *Counter {
	if !cfg.Enabled {
		return &Counter{}
	}

	// Progress goes to stderr to not interfere with stdout
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := []progressbar.Option{
		progressbar.OptionSetDescription(cfg.Description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100 * time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
		progressbar.OptionSetWriter(w),
	}

	if cfg.Total > 0 {
		// Determinate progress bar (known count)
		opts = append(opts, progressbar.OptionShowCount())
		return &Counter{bar: progressbar.NewOptions64(cfg.Total, opts...)}
	}

	// Indeterminate progress (spinner)
	opts = append(opts, progressbar.OptionSpinnerType(14))
	return &Counter{bar: progressbar.NewOptions(-1, opts...)}
}

// Add records n processed items.
func (c *Counter) Add(n int) {
	if c.bar != nil && n > 0 {
		c.bar.Add(n)
	}
}

// Finish ensures the progress bar completes (useful for indeterminate progress)
func (c *Counter) Finish() {
	if c.bar != nil {
		c.bar.Finish()
	}
}
