// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"rsc.io/iconmig/jsx"
)

// A Kind classifies a skipped element.
type Kind int

const (
	// UnresolvedIconValue: the icon value is not a literal name or a
	// recognizable icon object.
	UnresolvedIconValue Kind = iota

	// UnmappableIdentifier: the icon name maps to no component name.
	UnmappableIdentifier

	// AlreadyMigrated: the icon value is already a JSX element.
	// It is never reported.
	AlreadyMigrated
)

var kindNames = [...]string{
	UnresolvedIconValue:  "unresolved icon value",
	UnmappableIdentifier: "unmappable icon name",
	AlreadyMigrated:      "already migrated",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Diagnostic reports one element left for manual review.
type Diagnostic struct {
	Pos       jsx.Position
	Component string // target element name
	Kind      Kind
	Detail    string // optional refinement of Kind
	Value     string // the icon attribute, shortened to one line
}

func (d *Diagnostic) Error() string {
	msg := d.Kind.String()
	if d.Detail != "" {
		msg += " (" + d.Detail + ")"
	}
	return fmt.Sprintf("%s: %s: %s: %s", d.Pos, d.Component, msg, d.Value)
}

// maxValue bounds the length of Diagnostic.Value, in runes.
const maxValue = 80

// shorten collapses white space runs in s to single spaces
// and truncates the result to maxValue runes.
func shorten(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= maxValue {
		return s
	}
	n := 0
	for i := range s {
		if n == maxValue-3 {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

type diagKey struct {
	pos jsx.Position
	msg string
}

// A diagList is a set of Diagnostics.
// The zero value is an empty list, ready to use.
type diagList struct {
	list []*Diagnostic
	set  map[diagKey]bool
}

// Add adds d to l, suppressing duplicates (same position and message).
func (l *diagList) Add(d *Diagnostic) {
	k := diagKey{d.Pos, d.Error()}
	if l.set[k] {
		return
	}
	if l.set == nil {
		l.set = make(map[diagKey]bool)
	}
	l.list = append(l.list, d)
	l.set[k] = true
}

// Sorted returns the diagnostics in file and offset order.
func (l *diagList) Sorted() []*Diagnostic {
	sort.SliceStable(l.list, func(i, j int) bool {
		p1, p2 := l.list[i].Pos, l.list[j].Pos
		if p1.Filename != p2.Filename {
			return p1.Filename < p2.Filename
		}
		return p1.Offset < p2.Offset
	})
	return l.list
}
