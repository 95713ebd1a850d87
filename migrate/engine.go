// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package migrate rewrites legacy string icon props on configured
// JSX components into icon elements.
//
// For each target element with an icon attribute, the engine
// classifies the attribute value, maps the legacy icon name to
// a component name, builds the new icon element, and replaces
// the element's attribute list. Elements it cannot rewrite are
// left alone and reported. Once every element is processed,
// the new component names are imported and, if anything needs
// review, a marker comment is added to the top of the file.
//
// All changes are byte edits to the original text; everything
// the engine does not rewrite is preserved exactly, so the output
// of a run is a fixed point of the next. Elements nested inside
// the attributes of other elements are rewritten first, and an
// attribute that moves carries the rewrites inside it along.
package migrate

import (
	"sort"
	"strings"

	"rsc.io/iconmig/jsx"
)

// An Engine rewrites files according to a Config.
// It is safe for concurrent use by multiple goroutines.
type Engine struct {
	cfg    *Config
	mapper *Mapper
}

// New returns an Engine for cfg.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, mapper: NewMapper(cfg.Prefixes)}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// A Ledger records what happened to a file.
type Ledger struct {
	Rewritten int // elements rewritten
	Skipped   int // elements left alone, for any reason

	// NeedsReview reports that some skipped element
	// needs a person to look at it.
	NeedsReview bool
}

// A Result is the outcome of rewriting one file.
type Result struct {
	Ledger      Ledger
	Diagnostics []*Diagnostic // sorted by position
	Imported    []string      // component names added to imports
	Commented   bool          // review comment added
}

// Rewrite queues the edits migrating f. It processes the target
// elements innermost first: an element inside another's attributes
// is rewritten before the element containing it.
// Use f.Bytes to obtain the new text.
func (e *Engine) Rewrite(f *jsx.File) *Result {
	r := &rewriter{
		e:     e,
		f:     f,
		names: make(map[string]bool),
	}
	var targets []*jsx.Element
	for _, el := range f.Elements {
		if e.cfg.Rule(el.Name) != nil {
			targets = append(targets, el)
		}
	}
	// An element's span contains the spans of the elements
	// in its attributes, so those end first.
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].End < targets[j].End
	})
	for _, el := range targets {
		r.element(el, e.cfg.Rule(el.Name))
	}
	r.comment()
	r.imports()
	r.res.Diagnostics = r.diags.Sorted()
	return &r.res
}

// A rewriter holds the state for rewriting one file.
type rewriter struct {
	e     *Engine
	f     *jsx.File
	names map[string]bool // component names used by rewrites
	diags diagList
	res   Result
}

func (r *rewriter) element(el *jsx.Element, rule *Rule) {
	c := Classify(el.Attrs, rule)
	var raw string
	switch spec := c.Spec.(type) {
	case nil:
		return
	case *Unrecognized:
		if spec.Benign {
			r.skip(el, c, AlreadyMigrated, "")
		} else {
			r.skip(el, c, UnresolvedIconValue, spec.Reason)
		}
		return
	case *LiteralName:
		raw = spec.Name
	case *ObjectForm:
		raw = spec.IconName
	}
	name := r.e.mapper.Map(raw)
	if name == UnknownIcon {
		r.skip(el, c, UnmappableIdentifier, "")
		return
	}
	icon := Synthesize(name, c, rule, r.e.cfg.DefaultSize)
	r.apply(el, icon, Merge(c.Remainder, icon, c.Direct))
	r.names[name] = true
	r.res.Ledger.Rewritten++
}

func (r *rewriter) skip(el *jsx.Element, c *Classified, kind Kind, detail string) {
	r.res.Ledger.Skipped++
	if kind == AlreadyMigrated {
		return
	}
	r.res.Ledger.NeedsReview = true
	r.diags.Add(&Diagnostic{
		Pos:       r.f.Position(c.Icon.Pos),
		Component: el.Name,
		Kind:      kind,
		Detail:    detail,
		Value:     shorten(c.Icon.Text),
	})
}

// apply queues the edits turning el's attribute list into out,
// in which icon is the new icon attribute.
//
// The longest prefix of out that is a run of original attributes
// in increasing source order stays in place. Every other original
// attribute is deleted along with the white space before it, and the
// rest of out is inserted after the last original attribute.
// Text copied from the file includes the edits already queued
// inside it for nested elements.
func (r *rewriter) apply(el *jsx.Element, icon *Icon, out []Out) {
	index := make(map[jsx.Attr]int)
	for i, a := range el.Attrs {
		index[a] = i
	}
	keep := make(map[jsx.Attr]bool)
	i, last := 0, -1
	for ; i < len(out) && out[i].Attr != nil; i++ {
		k := index[out[i].Attr]
		if k < last {
			break
		}
		last = k
		keep[out[i].Attr] = true
	}

	sep := r.separator(el)
	var b strings.Builder
	for _, o := range out[i:] {
		b.WriteString(sep)
		if o.Attr == nil {
			b.WriteString("icon={" + icon.format(r.f) + "}")
		} else {
			b.WriteString(r.f.Edited(o.Attr.Span()))
		}
	}
	for _, a := range el.Attrs {
		if !keep[a] {
			pos, end := a.Span()
			pos = r.f.LeadingSpace(pos)
			r.f.DiscardAt(pos, end)
			r.f.DeleteAt(pos, end)
		}
	}
	r.f.InsertAt(el.AttrEnd(), b.String())
}

// separator returns the white space to write before each appended
// attribute: the white space before el's last attribute, starting at
// its final line break if any, or a single space.
func (r *rewriter) separator(el *jsx.Element) string {
	if len(el.Attrs) == 0 {
		return " "
	}
	pos, _ := el.Attrs[len(el.Attrs)-1].Span()
	ws := r.f.Slice(r.f.LeadingSpace(pos), pos)
	if i := strings.LastIndex(ws, "\n"); i >= 0 {
		ws = ws[i:]
	}
	if ws == "" {
		ws = " "
	}
	return ws
}

// imports records the imported names in the result and queues
// the import edits.
func (r *rewriter) imports() {
	if len(r.names) == 0 {
		return
	}
	var names []string
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	r.res.Imported = addImports(r.f, r.e.cfg.Package, names)
}

// comment queues the review comment if the file needs one
// and does not have one.
func (r *rewriter) comment() {
	if !r.res.Ledger.NeedsReview || strings.Contains(string(r.f.Text), r.e.cfg.Marker) {
		return
	}
	r.f.InsertAt(r.f.Header, "// "+r.e.cfg.Comment+"\n")
	r.res.Commented = true
}
