// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"regexp"

	"rsc.io/iconmig/jsx"
)

// A Spec is the classified value of an icon attribute:
// *LiteralName, *ObjectForm or *Unrecognized.
type Spec interface {
	spec()
}

// A LiteralName is icon="name" or icon={`name`}.
type LiteralName struct {
	Name string
}

// An ObjectForm is icon={{ icon: "name", ...props }}.
type ObjectForm struct {
	IconName string
	HasIcon  bool   // an icon key with a string value was found
	Extra    []Prop // every other member, in order
}

// An Unrecognized is an icon value that cannot be rewritten.
// Benign values (already JSX) need no attention.
type Unrecognized struct {
	Benign bool
	Reason string
}

func (*LiteralName) spec()  {}
func (*ObjectForm) spec()   {}
func (*Unrecognized) spec() {}

// A Prop is one attribute of a new icon element.
type Prop struct {
	Name string // attribute name, or "" for a spread
	Text string // attribute source text

	// src is where Text came from, when it was copied
	// from the file rather than made up.
	src *source
}

// A source records that a Prop's Text is pre, then the file text
// in [pos, end), then post.
type source struct {
	pos, end  int
	pre, post string
}

// text returns p's text with the edits queued in f
// inside p's source applied.
func (p Prop) text(f *jsx.File) string {
	if p.src == nil {
		return p.Text
	}
	return p.src.pre + f.Edited(p.src.pos, p.src.end) + p.src.post
}

// A Classified is an element's attribute list split for rewriting.
type Classified struct {
	// Spec is the classified icon value, or nil when the
	// element has no icon attribute.
	Spec Spec

	// Icon is the icon attribute itself.
	Icon *jsx.Attribute

	// Direct holds the outer attributes that may move onto the icon
	// (color, size and the rule's transfer list), in source order.
	Direct []*jsx.Attribute

	// Remainder holds every other attribute, in source order.
	Remainder []jsx.Attr
}

// direct returns the effective direct attribute with the given name:
// the last one, as in JSX.
func (c *Classified) direct(name string) *jsx.Attribute {
	var found *jsx.Attribute
	for _, a := range c.Direct {
		if a.Name == name {
			found = a
		}
	}
	return found
}

// Classify splits attrs for the target rule.
func Classify(attrs []jsx.Attr, rule *Rule) *Classified {
	c := new(Classified)
	icons := 0
	for _, a := range attrs {
		attr, ok := a.(*jsx.Attribute)
		switch {
		case ok && attr.Name == "icon":
			icons++
			c.Icon = attr
		case ok && isDirect(attr.Name, rule):
			c.Direct = append(c.Direct, attr)
		default:
			c.Remainder = append(c.Remainder, a)
		}
	}
	switch {
	case icons == 0:
		// Not an icon-bearing element.
	case icons > 1:
		c.Spec = &Unrecognized{Reason: "more than one icon attribute"}
	default:
		c.Spec = classifyValue(c.Icon)
	}
	return c
}

func isDirect(name string, rule *Rule) bool {
	if name == "color" || name == "size" {
		return true
	}
	for _, t := range rule.Transfer {
		if t == name {
			return true
		}
	}
	return false
}

func classifyValue(a *jsx.Attribute) Spec {
	switch v := a.Value.(type) {
	case nil:
		return &Unrecognized{Reason: "icon attribute has no value"}
	case *jsx.String:
		return &LiteralName{Name: v.Value}
	case *jsx.Template:
		if v.Substitutions > 0 {
			return &Unrecognized{Reason: "template literal with substitutions"}
		}
		return &LiteralName{Name: v.Value}
	case *jsx.Object:
		return classifyObject(v)
	case *jsx.JSX:
		return &Unrecognized{Benign: true, Reason: "already a JSX element"}
	}
	return &Unrecognized{Reason: "unsupported expression"}
}

// isAttrName matches names usable as JSX attribute names.
var isAttrName = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{Nd}_$-]*(:[\p{L}_$][\p{L}\p{Nd}_$-]*)?$`)

func classifyObject(obj *jsx.Object) Spec {
	if len(obj.Props) == 0 {
		return &Unrecognized{Reason: "empty icon object"}
	}
	form := new(ObjectForm)
	spread := false
	for _, p := range obj.Props {
		switch p := p.(type) {
		case *jsx.Method:
			return &Unrecognized{Reason: "method in icon object"}
		case *jsx.Spread:
			spread = true
			form.Extra = append(form.Extra, Prop{
				Text: "{" + p.Raw + "}",
				src:  &source{pos: p.Pos, end: p.End, pre: "{", post: "}"},
			})
		case *jsx.KeyValue:
			if p.Computed {
				return &Unrecognized{Reason: "computed key " + p.Key + " in icon object"}
			}
			if p.Key == "icon" {
				// The last icon key wins, as in JavaScript.
				form.IconName, form.HasIcon = literal(p.Value)
				continue
			}
			if !isAttrName.MatchString(p.Key) {
				return &Unrecognized{Reason: "key " + p.Key + " is not an attribute name"}
			}
			form.Extra = append(form.Extra, objectProp(p.Key, p.Value))
		}
	}
	if !form.HasIcon && !spread {
		return &Unrecognized{Reason: "icon object has no icon key"}
	}
	return form
}

// literal returns the value of a string or substitution-free template.
func literal(x jsx.Expr) (string, bool) {
	switch x := x.(type) {
	case *jsx.String:
		return x.Value, true
	case *jsx.Template:
		if x.Substitutions == 0 {
			return x.Value, true
		}
	}
	return "", false
}

// objectProp formats an object member as an attribute:
// strings become attribute strings, anything else an expression container.
func objectProp(name string, x jsx.Expr) Prop {
	if s, ok := x.(*jsx.String); ok {
		if q, ok := jsx.Quote(s.Value); ok {
			return Prop{Name: name, Text: name + "=" + q}
		}
	}
	pos, end := x.Span()
	return Prop{
		Name: name,
		Text: name + "={" + x.Source() + "}",
		src:  &source{pos: pos, end: end, pre: name + "={", post: "}"},
	}
}
