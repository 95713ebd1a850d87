// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsx parses JavaScript and TypeScript sources containing JSX
// into a small syntax model sufficient for rewriting element attributes
// and import declarations, and applies byte-level edits to the original text.
//
// The model only covers what the rewriter needs: top-level imports,
// every JSX opening or self-closing element with its attributes,
// and a classification of attribute value expressions.
// All nodes carry byte offsets into File.Text.
package jsx

import "strings"

// An Import is a top-level import declaration.
type Import struct {
	Pos, End  int
	Source    string // unquoted module specifier
	Quote     byte   // quote character used around Source
	Semicolon bool   // declaration ends in an explicit ';'
	TypeOnly  bool   // import type { ... } from "..."

	Default    string // default binding, or ""
	DefaultEnd int    // end of the default binding
	Namespace  string // namespace binding (* as X), or ""

	// Named lists the specifiers between braces.
	// HasNamed distinguishes "import {} from" from no braces at all.
	Named              []*ImportSpec
	HasNamed           bool
	NamedPos, NamedEnd int // span of the braces, inclusive
}

// An ImportSpec is one specifier inside the braces of an import.
type ImportSpec struct {
	Name     string // imported name
	Local    string // local binding; same as Name when there is no alias
	TypeOnly bool   // { type X }
	Text     string // source text of the specifier
}

// NamedText returns the source text of the named import list, braces included.
func (imp *Import) NamedText(text []byte) string {
	if !imp.HasNamed {
		return ""
	}
	return string(text[imp.NamedPos:imp.NamedEnd])
}

// An Element is a JSX opening element (<X ...>) or self-closing element (<X ... />).
type Element struct {
	Name    string // dotted tag name, such as "Button" or "NavBar.Icon"
	Pos     int    // offset of '<'
	End     int    // offset just past '>'
	NameEnd int    // end of the tag name (or type arguments, if any)
	Attrs   []Attr
}

// AttrEnd returns the offset just past the last attribute,
// or NameEnd when the element has no attributes.
func (e *Element) AttrEnd() int {
	if len(e.Attrs) == 0 {
		return e.NameEnd
	}
	_, end := e.Attrs[len(e.Attrs)-1].Span()
	return end
}

// Attr is an element attribute: *Attribute, *SpreadAttribute or *ExprAttribute.
type Attr interface {
	Span() (pos, end int)
	Source() string
	attr()
}

// An Attribute is a name[=value] attribute.
type Attribute struct {
	Pos, End int
	Name     string
	// Value is nil for a bare attribute (<X disabled />).
	Value Expr
	// Container reports whether the value was written in braces: name={value}.
	Container bool
	Text      string
}

// A SpreadAttribute is {...expr}.
type SpreadAttribute struct {
	Pos, End int
	Text     string
}

// An ExprAttribute is any other braced form in attribute position,
// such as a {/* comment */}.
type ExprAttribute struct {
	Pos, End int
	Text     string
}

func (a *Attribute) Span() (int, int)       { return a.Pos, a.End }
func (a *SpreadAttribute) Span() (int, int) { return a.Pos, a.End }
func (a *ExprAttribute) Span() (int, int)   { return a.Pos, a.End }

func (a *Attribute) Source() string       { return a.Text }
func (a *SpreadAttribute) Source() string { return a.Text }
func (a *ExprAttribute) Source() string   { return a.Text }

func (*Attribute) attr()       {}
func (*SpreadAttribute) attr() {}
func (*ExprAttribute) attr()   {}

// Expr is an attribute value or object property value:
// *String, *Template, *Object, *JSX or *Other.
// Span covers the expression's source text, which Source returns.
type Expr interface {
	Span() (pos, end int)
	Source() string
	expr()
}

// A String is a string literal.
type String struct {
	Pos, End int
	Value    string // decoded value
	Raw      string // source text, quotes included
}

// A Template is a template literal.
type Template struct {
	Pos, End      int
	Value         string // decoded text of the literal parts
	Substitutions int    // number of ${...} substitutions
	Raw           string
}

// An Object is an object literal.
type Object struct {
	Pos, End int
	Props    []Prop
	Raw      string
}

// A JSX is a JSX element or fragment used as a value.
type JSX struct {
	Pos, End int
	Raw      string
}

// An Other is any other expression.
type Other struct {
	Pos, End int
	Kind     string // tree-sitter node kind
	Raw      string
}

func (x *String) Span() (int, int)   { return x.Pos, x.End }
func (x *Template) Span() (int, int) { return x.Pos, x.End }
func (x *Object) Span() (int, int)   { return x.Pos, x.End }
func (x *JSX) Span() (int, int)      { return x.Pos, x.End }
func (x *Other) Span() (int, int)    { return x.Pos, x.End }

func (x *String) Source() string   { return x.Raw }
func (x *Template) Source() string { return x.Raw }
func (x *Object) Source() string   { return x.Raw }
func (x *JSX) Source() string      { return x.Raw }
func (x *Other) Source() string    { return x.Raw }

func (*String) expr()   {}
func (*Template) expr() {}
func (*Object) expr()   {}
func (*JSX) expr()      {}
func (*Other) expr()    {}

// Prop is an object literal member: *KeyValue, *Spread or *Method.
type Prop interface {
	prop()
}

// A KeyValue is key: value, or a shorthand property (Value is an *Other
// holding the identifier).
type KeyValue struct {
	Key      string
	Computed bool // [key]: value
	Value    Expr
}

// A Spread is ...expr inside an object literal.
type Spread struct {
	Pos, End int
	Raw      string // source text including the leading "..."
}

// A Method is a method, getter or setter definition.
type Method struct {
	Pos, End int
	Raw      string
}

func (*KeyValue) prop() {}
func (*Spread) prop()   {}
func (*Method) prop()   {}

// Quote formats s as a JSX attribute string if it can be written
// without escapes, reporting whether that was possible.
func Quote(s string) (string, bool) {
	if strings.ContainsAny(s, "\"\n\r&\\") {
		return "", false
	}
	return `"` + s + `"`, true
}
