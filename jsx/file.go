// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsx

import (
	"fmt"
	"sort"

	"rsc.io/iconmig/edit"
)

// A File is a parsed source file plus the edits queued against it.
type File struct {
	Name     string
	Text     []byte
	Imports  []*Import  // top-level imports, in source order
	Elements []*Element // every named JSX element, in document order

	// Header is the offset where file-level comments may be inserted:
	// 0, or just past a leading #! line.
	Header int

	// Prologue is the offset just past the last directive ("use client";)
	// at the top of the program, or the offset of the first statement
	// when there are none.
	Prologue int

	// Directives counts the directives before Prologue.
	Directives int

	lines []int // offsets of line starts
	buf   *edit.Buffer
}

// A Position is a location in a file.
type Position struct {
	Filename string
	Offset   int
	Line     int // 1-based
	Column   int // 1-based, in bytes
}

func (p Position) String() string {
	s := p.Filename
	if p.Line > 0 {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return s
}

// Position returns the position of the byte offset off.
func (f *File) Position(off int) Position {
	if f.lines == nil {
		f.lines = []int{0}
		for i, c := range f.Text {
			if c == '\n' {
				f.lines = append(f.lines, i+1)
			}
		}
	}
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > off }) - 1
	return Position{Filename: f.Name, Offset: off, Line: i + 1, Column: off - f.lines[i] + 1}
}

// Slice returns the original text in [pos, end).
func (f *File) Slice(pos, end int) string {
	return string(f.Text[pos:end])
}

func (f *File) buffer() *edit.Buffer {
	if f.buf == nil {
		f.buf = edit.NewBuffer(f.Text)
	}
	return f.buf
}

// ReplaceAt queues replacing the original text in [pos, end) with repl.
func (f *File) ReplaceAt(pos, end int, repl string) {
	f.buffer().Replace(pos, end, repl)
}

// InsertAt queues inserting text at pos.
func (f *File) InsertAt(pos int, text string) {
	f.buffer().Insert(pos, text)
}

// DeleteAt queues deleting the original text in [pos, end).
func (f *File) DeleteAt(pos, end int) {
	f.buffer().Delete(pos, end)
}

// Edited returns the text in [pos, end) with the queued edits
// inside it applied.
func (f *File) Edited(pos, end int) string {
	if f.buf == nil {
		return f.Slice(pos, end)
	}
	return f.buf.Slice(pos, end)
}

// DiscardAt drops the queued edits inside [pos, end).
// Insertions at pos or end are kept.
func (f *File) DiscardAt(pos, end int) {
	if f.buf != nil {
		f.buf.Discard(pos, end)
	}
}

// Modified reports whether any edits have been queued.
func (f *File) Modified() bool {
	return f.buf != nil && f.buf.Len() > 0
}

// Bytes returns the file text with all queued edits applied.
func (f *File) Bytes() []byte {
	if !f.Modified() {
		return f.Text
	}
	return f.buf.Bytes()
}

// LeadingSpace returns the offset of the start of the run of
// white space immediately before pos.
func (f *File) LeadingSpace(pos int) int {
	for pos > 0 {
		switch f.Text[pos-1] {
		case ' ', '\t', '\n', '\r':
			pos--
			continue
		}
		break
	}
	return pos
}
