// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"strings"

	"rsc.io/iconmig/jsx"
)

// An Icon is the element synthesized to replace a legacy icon value.
type Icon struct {
	Name  string // component name
	Props []Prop

	// Consumed holds the names of outer attributes
	// that moved onto the icon.
	Consumed map[string]bool
}

// String returns the icon element's source text, as in
// <ChevronLeft color="red" size={20} />.
func (ic *Icon) String() string {
	return ic.format(nil)
}

// format returns the icon element's source text. If f is not nil,
// props copied from f include the edits queued inside them.
func (ic *Icon) format(f *jsx.File) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(ic.Name)
	for _, p := range ic.Props {
		b.WriteString(" ")
		if f != nil {
			b.WriteString(p.text(f))
		} else {
			b.WriteString(p.Text)
		}
	}
	b.WriteString(" />")
	return b.String()
}

// Attr returns the new icon attribute's source text.
func (ic *Icon) Attr() string {
	return "icon={" + ic.String() + "}"
}

// Synthesize builds the icon element named name for the classified element c.
//
// The icon's props are, in order: the object form's extra members;
// then each of the rule's transfer props not set by the object,
// taken from the outer element; then size, from the object,
// the outer element or (unless the rule says otherwise) defaultSize.
func Synthesize(name string, c *Classified, rule *Rule, defaultSize string) *Icon {
	ic := &Icon{Name: name, Consumed: make(map[string]bool)}
	set := make(map[string]bool)
	if form, ok := c.Spec.(*ObjectForm); ok {
		for _, p := range form.Extra {
			ic.Props = append(ic.Props, p)
			if p.Name != "" {
				set[p.Name] = true
			}
		}
	}
	for _, prop := range rule.Transfer {
		if prop == "size" || set[prop] {
			continue
		}
		if a := c.direct(prop); a != nil {
			ic.move(a)
			set[prop] = true
		}
	}
	if !set["size"] {
		if a := c.direct("size"); a != nil {
			ic.move(a)
		} else if !rule.NoDefaultSize {
			ic.Props = append(ic.Props, Prop{Name: "size", Text: "size={" + defaultSize + "}"})
		}
	}
	return ic
}

func (ic *Icon) move(a *jsx.Attribute) {
	ic.Props = append(ic.Props, Prop{Name: a.Name, Text: a.Text, src: &source{pos: a.Pos, end: a.End}})
	ic.Consumed[a.Name] = true
}
