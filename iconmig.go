// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
	"rsc.io/iconmig/migrate"
)

const usageLine = "usage: iconmig [-diff] [-l] [-config file] [-pkg path] [-j n] [-v] path..."

func main() {
	log.SetPrefix("iconmig: ")
	log.SetFlags(0)

	opts, paths, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	r, err := newRunner(opts, ".", os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if !r.run(paths) {
		os.Exit(1)
	}
}

type options struct {
	showDiff bool
	list     bool
	verbose  bool
	config   string
	pkg      string
	jobs     int
}

// parseFlags parses the command line, printing usage to stderr on failure.
func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := new(options)
	fs := flag.NewFlagSet("iconmig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usageLine) }
	fs.BoolVar(&opts.showDiff, "diff", false, "show diffs instead of writing files")
	fs.BoolVar(&opts.list, "l", false, "list files that would change instead of writing them")
	fs.StringVar(&opts.config, "config", "", "read configuration from `file`")
	fs.StringVar(&opts.pkg, "pkg", "", "import icon components from `path`")
	fs.IntVar(&opts.jobs, "j", 0, "process up to `n` files at once (default GOMAXPROCS)")
	fs.BoolVar(&opts.verbose, "v", false, "log progress")
	if err := fs.Parse(args); err != nil {
		return nil, nil, newErrUsage("%v", err)
	}

	var err error
	switch {
	case fs.NArg() == 0:
		err = newErrUsage("no paths")
	case opts.jobs < 0:
		err = newErrUsage("-j %d: must not be negative", opts.jobs)
	case opts.showDiff && opts.list:
		err = newErrUsage("-diff and -l cannot be used together")
	}
	if err != nil {
		fmt.Fprintf(stderr, "iconmig: %v\n", err)
		fs.Usage()
		return nil, nil, err
	}
	if opts.jobs == 0 {
		opts.jobs = runtime.GOMAXPROCS(0)
	}
	return opts, fs.Args(), nil
}

// newRunner returns a runner for opts. Relative paths,
// including the configuration file, are resolved against dir.
func newRunner(opts *options, dir string, stdout, stderr io.Writer) (*runner, error) {
	cfg := migrate.DefaultConfig()
	if opts.config != "" {
		name := opts.config
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		cfg, err = migrate.LoadConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.config, err)
		}
	}
	if opts.pkg != "" {
		cfg.Package = opts.pkg
	}
	engine, err := migrate.New(cfg)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	return &runner{
		engine:   engine,
		dir:      dir,
		showDiff: opts.showDiff,
		list:     opts.list,
		jobs:     opts.jobs,
		stdout:   stdout,
		stderr:   stderr,
		log: slog.New(tint.NewHandler(stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})),
	}, nil
}
