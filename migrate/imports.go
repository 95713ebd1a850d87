// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"bytes"
	"sort"
	"strings"

	"rsc.io/iconmig/jsx"
)

// addImports queues the edits importing names from pkg into f
// and returns the names that were not already imported.
//
// If f has a value import from pkg with a default or named binding,
// the names join its braces (created if needed). Otherwise a new
// declaration follows the last import, or opens the program if f
// has no imports, on the line after the last import.
// Type-only and namespace imports are never extended.
//
// A name bound by any import from pkg counts as imported, except that
// an inline type specifier ({ type Home }) in the extended declaration
// becomes a value specifier when its name is needed.
func addImports(f *jsx.File, pkg string, names []string) []string {
	var target *jsx.Import
	for _, imp := range f.Imports {
		if imp.Source == pkg && !imp.TypeOnly && imp.Namespace == "" && (imp.HasNamed || imp.Default != "") {
			target = imp
			break
		}
	}

	have := make(map[string]bool)
	typed := make(map[string]bool) // inline type specifiers in target
	for _, imp := range f.Imports {
		if imp.Source != pkg {
			continue
		}
		for _, local := range []string{imp.Default, imp.Namespace} {
			if local != "" {
				have[local] = true
			}
		}
		for _, s := range imp.Named {
			if imp == target && s.TypeOnly && s.Name == s.Local {
				typed[s.Local] = true
				continue
			}
			have[s.Local] = true
		}
	}
	var add []string
	for _, name := range names {
		if !have[name] {
			add = append(add, name)
		}
	}
	if len(add) == 0 {
		return nil
	}
	need := make(map[string]bool)
	for _, name := range add {
		need[name] = true
	}

	switch {
	case target != nil && target.HasNamed:
		var specs []string
		seen := make(map[string]bool)
		for _, s := range target.Named {
			text := s.Text
			if s.TypeOnly && typed[s.Local] && need[s.Local] {
				text = s.Name
			}
			if !seen[text] {
				seen[text] = true
				specs = append(specs, text)
			}
		}
		for _, name := range add {
			if !seen[name] {
				seen[name] = true
				specs = append(specs, name)
			}
		}
		sort.Strings(specs)
		f.ReplaceAt(target.NamedPos, target.NamedEnd, formatNamed(specs, target.NamedText(f.Text)))

	case target != nil:
		f.InsertAt(target.DefaultEnd, ", { "+strings.Join(add, ", ")+" }")

	case len(f.Imports) > 0:
		last := f.Imports[len(f.Imports)-1]
		at, nl := lineEnd(f, last.End), "\n"
		if bytes.HasPrefix(f.Text[at:], []byte("\r\n")) {
			nl = "\r\n"
		}
		f.InsertAt(at, nl+importDecl(add, pkg, last.Quote, last.Semicolon))

	case f.Directives > 0:
		f.InsertAt(f.Prologue, "\n\n"+importDecl(add, pkg, '"', true))

	default:
		f.InsertAt(f.Prologue, importDecl(add, pkg, '"', true)+"\n\n")
	}
	return add
}

// lineEnd returns the offset of the end of the line containing pos,
// before any \r\n, if the rest of that line after pos is only white
// space and comments. Otherwise it returns pos.
func lineEnd(f *jsx.File, pos int) int {
	text := f.Text
	i := pos
	for i < len(text) {
		switch c := text[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '\n':
			if i > pos && text[i-1] == '\r' {
				return i - 1
			}
			return i
		case c == '\r' && i+1 < len(text) && text[i+1] == '\n':
			return i
		case bytes.HasPrefix(text[i:], []byte("//")):
			j := bytes.IndexByte(text[i:], '\n')
			if j < 0 {
				return len(text)
			}
			i += j
		case bytes.HasPrefix(text[i:], []byte("/*")):
			j := bytes.Index(text[i+2:], []byte("*/"))
			if j < 0 || bytes.IndexByte(text[i:i+2+j], '\n') >= 0 {
				return pos
			}
			i += 2 + j + 2
		default:
			return pos
		}
	}
	return len(text)
}

// importDecl formats an import declaration.
func importDecl(names []string, pkg string, quote byte, semi bool) string {
	if quote == 0 {
		quote = '"'
	}
	s := "import { " + strings.Join(names, ", ") + " } from " + string(quote) + pkg + string(quote)
	if semi {
		s += ";"
	}
	return s
}

// formatNamed formats specs as a braced import list in the layout
// of old: one per line if old spans lines, otherwise on one line.
func formatNamed(specs []string, old string) string {
	nl := strings.Index(old, "\n")
	if nl < 0 {
		return "{ " + strings.Join(specs, ", ") + " }"
	}
	indent := old[nl+1:]
	indent = indent[:len(indent)-len(strings.TrimLeft(indent, " \t"))]
	if indent == "" {
		indent = "  "
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range specs {
		b.WriteString(indent)
		b.WriteString(s)
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}
