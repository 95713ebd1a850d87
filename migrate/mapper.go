// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownIcon is the name produced for identifiers that map to nothing.
// It is never imported; an element that maps to it is left alone.
const UnknownIcon = "UnknownIcon"

// A Mapper maps legacy icon identifiers such as "ic_basic_chevron_left"
// to icon component names such as "ChevronLeft".
type Mapper struct {
	prefixes []string // longest first
}

// NewMapper returns a Mapper stripping the given prefixes.
func NewMapper(prefixes []string) *Mapper {
	p := append([]string(nil), prefixes...)
	sort.SliceStable(p, func(i, j int) bool { return len(p[i]) > len(p[j]) })
	return &Mapper{prefixes: p}
}

// Map returns the component name for the identifier raw.
//
// It strips the longest matching prefix, splits the rest into words
// at '_' and '-', and joins the words with the first letter of each
// upper-cased and the rest lower-cased. If no words remain, Map
// returns UnknownIcon.
func (m *Mapper) Map(raw string) string {
	for _, p := range m.prefixes {
		if strings.HasPrefix(raw, p) {
			raw = raw[len(p):]
			break
		}
	}
	var b strings.Builder
	for _, word := range strings.FieldsFunc(raw, isWordSep) {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(word[size:]))
	}
	if b.Len() == 0 {
		return UnknownIcon
	}
	return b.String()
}

func isWordSep(r rune) bool {
	return r == '_' || r == '-'
}
