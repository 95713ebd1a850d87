// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edit

import "testing"

func TestEdit(t *testing.T) {
	b := NewBuffer([]byte("0123456789"))
	b.Insert(8, ",7½,")
	b.Replace(9, 10, "the-end")
	b.Insert(10, "!")
	b.Insert(4, "3.14,")
	b.Insert(4, "π,")
	b.Insert(4, "3.15,")
	b.Replace(3, 4, "three,")
	want := "012three,3.14,π,3.15,4567,7½,8the-end!"

	s := b.String()
	if s != want {
		t.Errorf("b.String() = %q, want %q", s, want)
	}
	sb := b.Bytes()
	if string(sb) != want {
		t.Errorf("b.Bytes() = %q, want %q", sb, want)
	}
}

func TestDeleteThenInsertAtEnd(t *testing.T) {
	b := NewBuffer([]byte(`<Button a="1" icon="x" />`))
	b.Delete(13, 22)
	b.Insert(22, ` icon={<X />}`)
	want := `<Button a="1" icon={<X />} />`
	if s := b.String(); s != want {
		t.Errorf("b.String() = %q, want %q", s, want)
	}
	if b.Len() != 2 {
		t.Errorf("b.Len() = %d, want 2", b.Len())
	}
}

func TestOverlapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("overlapping edits did not panic")
		}
	}()
	b := NewBuffer([]byte("0123456789"))
	b.Delete(2, 6)
	b.Replace(4, 8, "x")
	b.Bytes()
}

func TestSliceAndDiscard(t *testing.T) {
	src := `<A x={<B icon="b" />} y="1" />`
	b := NewBuffer([]byte(src))
	b.Replace(9, 17, `icon={<Bee />}`)
	b.Insert(2, "z ")
	b.Insert(21, " w")
	if s, want := b.Slice(3, 21), `x={<B icon={<Bee />} />}`; s != want {
		t.Errorf("b.Slice(3, 21) = %q, want %q", s, want)
	}
	if s, want := b.Slice(22, 27), `y="1"`; s != want {
		t.Errorf("b.Slice(22, 27) = %q, want %q", s, want)
	}

	b.Discard(2, 21)
	if b.Len() != 2 {
		t.Errorf("b.Len() = %d after Discard, want 2", b.Len())
	}
	b.Delete(2, 21)
	if s, want := b.String(), `<Az  w y="1" />`; s != want {
		t.Errorf("b.String() = %q, want %q", s, want)
	}
}
