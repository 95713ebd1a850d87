// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"rsc.io/iconmig/diff"
	"rsc.io/iconmig/jsx"
	"rsc.io/iconmig/migrate"
)

// A runner applies the engine to a set of files.
type runner struct {
	engine   *migrate.Engine
	dir      string // directory relative paths are resolved against
	showDiff bool
	list     bool
	jobs     int
	stdout   io.Writer
	stderr   io.Writer
	log      *slog.Logger
}

// A file is one input file and its rewrite.
type file struct {
	name     string // as named on the command line or found by walking
	mode     fs.FileMode
	old, new []byte
	res      *migrate.Result
	err      error
}

// skipDir reports whether walking should skip the directory name.
func skipDir(name string) bool {
	switch name {
	case "node_modules", "dist", "build":
		return true
	}
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// run rewrites the files named by paths, printing diagnostics
// and reporting whether every file was processed cleanly and
// none needs review.
func (r *runner) run(paths []string) bool {
	ok := true
	names, err := r.collect(paths)
	if err != nil {
		fmt.Fprintf(r.stderr, "iconmig: %v\n", err)
		ok = false
	}

	files := make([]*file, len(names))
	var g errgroup.Group
	g.SetLimit(r.jobs)
	for i, name := range names {
		g.Go(func() error {
			files[i] = r.rewrite(name)
			return nil
		})
	}
	g.Wait()

	changed := 0
	for _, f := range files {
		if !r.report(f) {
			ok = false
		}
		if f.err == nil && !bytes.Equal(f.old, f.new) {
			changed++
		}
	}
	r.log.Info("done", "files", len(files), "changed", changed)
	return ok
}

// abs returns the file system path for name.
func (r *runner) abs(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.dir, name)
}

// collect expands paths into a sorted list of file names.
// Directories are walked for files with a configured extension;
// files named explicitly are always included.
func (r *runner) collect(paths []string) ([]string, error) {
	cfg := r.engine.Config()
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	var errs []string
	for _, path := range paths {
		root := r.abs(path)
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: no such file or directory", path))
			continue
		}
		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !cfg.HasExtension(d.Name()) {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			add(filepath.Join(path, rel))
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Sprintf("walking %s: %v", path, err))
		}
	}
	sort.Strings(names)
	if len(errs) > 0 {
		return names, fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return names, nil
}

// rewrite reads, parses and rewrites the named file.
// It does not write anything.
func (r *runner) rewrite(name string) *file {
	f := &file{name: name}
	info, err := os.Stat(r.abs(name))
	if err != nil {
		f.err = err
		return f
	}
	f.mode = info.Mode().Perm()
	f.old, err = os.ReadFile(r.abs(name))
	if err != nil {
		f.err = err
		return f
	}
	syntax, err := jsx.Parse(name, f.old)
	if err != nil {
		f.err = err
		return f
	}
	f.res = r.engine.Rewrite(syntax)
	f.new = syntax.Bytes()
	r.log.Debug("rewrote", "file", name,
		"elements", f.res.Ledger.Rewritten,
		"skipped", f.res.Ledger.Skipped,
		"imported", f.res.Imported)
	return f
}

// report prints f's diagnostics and, depending on the mode, its diff,
// its name, or its new contents on disk. It reports whether f was
// processed cleanly and needs no review.
func (r *runner) report(f *file) bool {
	if f.err != nil {
		fmt.Fprintf(r.stderr, "%v\n", f.err)
		return false
	}
	for _, d := range f.res.Diagnostics {
		fmt.Fprintf(r.stderr, "%v\n", d)
	}
	ok := !f.res.Ledger.NeedsReview
	if bytes.Equal(f.old, f.new) {
		return ok
	}

	switch {
	case r.showDiff:
		d, err := diff.Diff("a/"+filepath.ToSlash(f.name), f.old, "b/"+filepath.ToSlash(f.name), f.new)
		if err != nil {
			fmt.Fprintf(r.stderr, "iconmig: %v\n", err)
			return false
		}
		r.stdout.Write(d)
	case r.list:
		fmt.Fprintln(r.stdout, f.name)
	default:
		if err := os.WriteFile(r.abs(f.name), f.new, f.mode); err != nil {
			fmt.Fprintf(r.stderr, "iconmig: %v\n", err)
			return false
		}
		r.log.Debug("wrote", "file", f.name)
	}
	return ok
}
