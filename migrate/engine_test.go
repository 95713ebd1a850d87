// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
	"rsc.io/iconmig/jsx"
)

// TestRewrite runs the engine over testdata/*.txt.
// Each archive holds an input file in.*, the expected output out.*
// (absent when the input must not change), the expected diagnostics
// in diag, and optionally a config.yaml.
func TestRewrite(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test cases")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			cfg := DefaultConfig()
			var in, out *txtar.File
			var wantDiag []byte
			for i := range ar.Files {
				f := &ar.Files[i]
				switch {
				case f.Name == "config.yaml":
					cfg, err = LoadConfig(f.Data)
					if err != nil {
						t.Fatal(err)
					}
				case f.Name == "diag":
					wantDiag = f.Data
				case strings.HasPrefix(f.Name, "in."):
					in = f
				case strings.HasPrefix(f.Name, "out."):
					out = f
				}
			}
			if in == nil {
				t.Fatal("no in.* file")
			}
			want := in.Data
			if out != nil {
				want = out.Data
			}

			e, err := New(cfg)
			if err != nil {
				t.Fatal(err)
			}
			have, res := rewrite(t, e, in.Name, in.Data)
			if !bytes.Equal(have, want) {
				t.Errorf("output:\n%s", have)
				t.Errorf("want:\n%s", want)
			}
			if d := diagText(res); d != string(wantDiag) {
				t.Errorf("diagnostics:\n%s", d)
				t.Errorf("want:\n%s", wantDiag)
			}
			if res.Ledger.NeedsReview != (len(wantDiag) > 0) {
				t.Errorf("NeedsReview = %v with diagnostics %q", res.Ledger.NeedsReview, wantDiag)
			}

			// The output of a run is a fixed point.
			again, res2 := rewrite(t, e, in.Name, have)
			if !bytes.Equal(again, have) {
				t.Errorf("second run changed output:\n%s", again)
			}
			if res2.Ledger.Rewritten != 0 || len(res2.Imported) != 0 || res2.Commented {
				t.Errorf("second run: %+v", res2)
			}
		})
	}
}

func rewrite(t *testing.T, e *Engine, name string, src []byte) ([]byte, *Result) {
	t.Helper()
	f, err := jsx.Parse(name, src)
	if err != nil {
		t.Fatal(err)
	}
	res := e.Rewrite(f)
	return f.Bytes(), res
}

func diagText(res *Result) string {
	var b strings.Builder
	for _, d := range res.Diagnostics {
		b.WriteString(d.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func TestRewriteLedger(t *testing.T) {
	e, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	src := `export const A = () => (
  <>
    <Button icon="ic_home" />
    <Chip icon={<Home />} />
    <Chip icon={name} />
    <ListItem label="none" />
  </>
);
`
	_, res := rewrite(t, e, "a.tsx", []byte(src))
	want := Ledger{Rewritten: 1, Skipped: 2, NeedsReview: true}
	if res.Ledger != want {
		t.Errorf("Ledger = %+v, want %+v", res.Ledger, want)
	}
	if len(res.Imported) != 1 || res.Imported[0] != "Home" {
		t.Errorf("Imported = %q, want [Home]", res.Imported)
	}
	if !res.Commented {
		t.Errorf("Commented = false, want true")
	}
}

func TestRewriteKeepsMarkedFile(t *testing.T) {
	e, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	src := "/* icon-migration: done by hand */\nexport const A = <Button icon={name} />;\n"
	have, res := rewrite(t, e, "a.jsx", []byte(src))
	if string(have) != src {
		t.Errorf("file with marker changed:\n%s", have)
	}
	if res.Commented || !res.Ledger.NeedsReview {
		t.Errorf("Commented = %v, NeedsReview = %v", res.Commented, res.Ledger.NeedsReview)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = nil
	if _, err := New(cfg); err == nil {
		t.Errorf("New with no targets succeeded")
	}
}
