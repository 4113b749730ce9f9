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

package listing

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/icemarkom/syncfmt/internal/progress"
	"golang.org/x/sync/errgroup"
)

const (
	// DirMIME is reported for directories.
	DirMIME = "inode/directory"

	// fallbackMIME is reported when content sniffing fails.
	fallbackMIME = "application/octet-stream"
)

// Entry contains information about a listed file or directory
type Entry struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	Size    int64     `json:"size_bytes"` // -1 when unknown (directories in flat listings)
	ModTime time.Time `json:"modified"`
	MIME    string    `json:"mime"`
	IsDir   bool      `json:"is_dir"`
}

// Options controls a listing
type Options struct {
	Recursive bool
	Hidden    bool // Include dot files
	Workers   int  // Parallel MIME sniffers (<= 0 means one)
	Verbose   bool // Show a progress bar on stderr
}

// List returns the entries below dir, newest first. Directories get the
// total size of the files below them when opts.Recursive is set, and -1
// otherwise.
func List(ctx context.Context, dir string, opts Options) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := walk(ctx, dir, opts)
	if err != nil {
		return nil, err
	}

	if err := sniff(ctx, dir, entries, opts); err != nil {
		return nil, err
	}

	if opts.Recursive {
		sumDirs(entries)
	}

	// Sort by modification time (newest first), then by path for stable output
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].ModTime.Equal(entries[j].ModTime) {
			return entries[i].ModTime.After(entries[j].ModTime)
		}
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

func walk(ctx context.Context, root string, opts Options) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Debug("skipping unreadable entry", "path", path, "err", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == root {
			return nil
		}

		if !opts.Hidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			slog.Debug("skipping entry without info", "path", path, "err", err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		e := Entry{
			Path:    filepath.ToSlash(rel),
			Name:    d.Name(),
			Size:    fileInfo.Size(),
			ModTime: fileInfo.ModTime(),
		}
		if d.IsDir() {
			e.IsDir = true
			e.Size = -1
			e.MIME = DirMIME
		}
		entries = append(entries, e)

		if d.IsDir() && !opts.Recursive {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return entries, nil
}

// sniff fills in the MIME type of every file from its content.
func sniff(ctx context.Context, root string, entries []Entry, opts Options) error {
	files := 0
	for _, e := range entries {
		if !e.IsDir {
			files++
		}
	}

	counter := progress.NewCounter(progress.Config{
		Description: "Detecting file types",
		Total:       int64(files),
		Enabled:     opts.Verbose && files > 0,
	})
	defer counter.Finish()

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range entries {
		if entries[i].IsDir {
			continue
		}
		e := &entries[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.MIME = detect(filepath.Join(root, filepath.FromSlash(e.Path)))
			counter.Add(1)
			return nil
		})
	}

	return g.Wait()
}

func detect(path string) string {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		slog.Debug("content type detection failed", "path", path, "err", err)
		return fallbackMIME
	}
	mime, _, _ := strings.Cut(m.String(), ";")
	return strings.TrimSpace(mime)
}

// sumDirs sets each directory's size to the total size of the files below it.
func sumDirs(entries []Entry) {
	index := make(map[string]int)
	for i, e := range entries {
		if e.IsDir {
			index[e.Path] = i
			entries[i].Size = 0
		}
	}

	for _, e := range entries {
		if e.IsDir {
			continue
		}
		for parent := parentOf(e.Path); parent != ""; parent = parentOf(parent) {
			if i, ok := index[parent]; ok {
				entries[i].Size += e.Size
			}
		}
	}
}

func parentOf(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	return p[:i]
}
