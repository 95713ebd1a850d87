// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import "rsc.io/iconmig/jsx"

// An Out is one attribute of a rewritten element.
type Out struct {
	Attr jsx.Attr // original attribute, or nil for the new icon attribute
	Text string
}

// Merge returns the rewritten element's attribute list: the remainder
// attributes, then the icon attribute, then the direct attributes
// the icon did not consume, each group in its original order.
func Merge(remainder []jsx.Attr, icon *Icon, direct []*jsx.Attribute) []Out {
	out := make([]Out, 0, len(remainder)+1+len(direct))
	for _, a := range remainder {
		out = append(out, Out{Attr: a, Text: a.Source()})
	}
	out = append(out, Out{Text: icon.Attr()})
	for _, a := range direct {
		if !icon.Consumed[a.Name] {
			out = append(out, Out{Attr: a, Text: a.Text})
		}
	}
	return out
}
