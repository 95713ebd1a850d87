// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsx

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// A SyntaxError reports source text that the grammar could not parse.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// language returns the grammar for the file name's extension.
func language(name string) (unsafe.Pointer, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tsx":
		return tree_sitter_typescript.LanguageTSX(), nil
	case ".ts", ".mts", ".cts":
		return tree_sitter_typescript.LanguageTypescript(), nil
	case ".js", ".jsx", ".mjs", ".cjs":
		return tree_sitter_javascript.Language(), nil
	}
	return nil, fmt.Errorf("%s: unsupported file type", name)
}

// Parse parses the source text src of the named file.
// The grammar is chosen by the file name's extension.
func Parse(name string, src []byte) (*File, error) {
	lang, err := language(name)
	if err != nil {
		return nil, err
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(lang)); err != nil {
		return nil, fmt.Errorf("%s: setting language: %w", name, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s: parse failed", name)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%s: parse returned nil root node", name)
	}

	f := &File{Name: name, Text: src}
	if root.HasError() {
		bad := firstError(root)
		pos := int(root.StartByte())
		msg := "syntax error"
		if bad != nil {
			pos = int(bad.StartByte())
			if bad.IsMissing() {
				msg = "syntax error: missing " + bad.Kind()
			}
		}
		return nil, &SyntaxError{Pos: f.Position(pos), Msg: msg}
	}

	p := &parse{f: f, src: src}
	p.program(root)
	p.walk(root)
	return f, nil
}

// firstError returns the first ERROR or MISSING node under n, in document order.
func firstError(n *tree_sitter.Node) *tree_sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && (c.HasError() || c.IsMissing()) {
			if bad := firstError(c); bad != nil {
				return bad
			}
		}
	}
	return nil
}

type parse struct {
	f   *File
	src []byte
}

func (p *parse) text(n *tree_sitter.Node) string {
	return n.Utf8Text(p.src)
}

func span(n *tree_sitter.Node) (int, int) {
	return int(n.StartByte()), int(n.EndByte())
}

// program records top-level imports, the #! header and the directive prologue.
func (p *parse) program(root *tree_sitter.Node) {
	f := p.f
	if bytes.HasPrefix(p.src, []byte("#!")) {
		if i := bytes.IndexByte(p.src, '\n'); i >= 0 {
			f.Header = i + 1
		} else {
			f.Header = len(p.src)
		}
	}
	f.Prologue = -1
	directives := true
	for i := uint(0); i < root.NamedChildCount(); i++ {
		c := root.NamedChild(i)
		switch c.Kind() {
		case "comment", "hash_bang_line":
			continue
		case "import_statement":
			f.Imports = append(f.Imports, p.importDecl(c))
		}
		if directives && isDirective(c) {
			f.Prologue = int(c.EndByte())
			f.Directives++
			continue
		}
		if directives && f.Prologue < 0 {
			f.Prologue = int(c.StartByte())
		}
		directives = false
	}
	if f.Prologue < 0 {
		f.Prologue = len(p.src)
		if f.Header > f.Prologue {
			f.Prologue = f.Header
		}
	}
}

func isDirective(n *tree_sitter.Node) bool {
	if n.Kind() != "expression_statement" || n.NamedChildCount() != 1 {
		return false
	}
	return n.NamedChild(0).Kind() == "string"
}

func (p *parse) importDecl(n *tree_sitter.Node) *Import {
	imp := &Import{Pos: int(n.StartByte()), End: int(n.EndByte())}
	if src := n.ChildByFieldName("source"); src != nil {
		raw := p.text(src)
		if len(raw) >= 2 {
			imp.Quote = raw[0]
		}
		imp.Source = p.stringValue(src)
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		switch c.Kind() {
		case "type":
			if !c.IsNamed() {
				imp.TypeOnly = true
			}
		case ";":
			imp.Semicolon = c.EndByte() > c.StartByte()
		case "import_clause":
			p.importClause(imp, c)
		}
	}
	return imp
}

func (p *parse) importClause(imp *Import, n *tree_sitter.Node) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		switch c.Kind() {
		case "identifier":
			imp.Default = p.text(c)
			imp.DefaultEnd = int(c.EndByte())
		case "namespace_import":
			for j := uint(0); j < c.NamedChildCount(); j++ {
				if id := c.NamedChild(j); id.Kind() == "identifier" {
					imp.Namespace = p.text(id)
				}
			}
		case "named_imports":
			imp.HasNamed = true
			imp.NamedPos = int(c.StartByte())
			imp.NamedEnd = int(c.EndByte())
			for j := uint(0); j < c.NamedChildCount(); j++ {
				s := c.NamedChild(j)
				if s.Kind() != "import_specifier" {
					continue
				}
				imp.Named = append(imp.Named, p.importSpec(s))
			}
		}
	}
}

func (p *parse) importSpec(n *tree_sitter.Node) *ImportSpec {
	spec := &ImportSpec{Text: p.text(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		if name.Kind() == "string" {
			spec.Name = p.stringValue(name)
		} else {
			spec.Name = p.text(name)
		}
	}
	spec.Local = spec.Name
	if alias := n.ChildByFieldName("alias"); alias != nil {
		spec.Local = p.text(alias)
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if c := n.Child(i); !c.IsNamed() && c.Kind() == "type" {
			spec.TypeOnly = true
		}
	}
	return spec
}

// walk records every named JSX element under n.
func (p *parse) walk(n *tree_sitter.Node) {
	switch n.Kind() {
	case "jsx_opening_element", "jsx_self_closing_element":
		if e := p.element(n); e != nil {
			p.f.Elements = append(p.f.Elements, e)
		}
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		p.walk(n.NamedChild(i))
	}
}

func (p *parse) element(n *tree_sitter.Node) *Element {
	name := n.ChildByFieldName("name")
	if name == nil {
		// Fragment.
		return nil
	}
	e := &Element{
		Name:    strings.Join(strings.Fields(p.text(name)), ""),
		Pos:     int(n.StartByte()),
		End:     int(n.EndByte()),
		NameEnd: int(name.EndByte()),
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c.StartByte() == name.StartByte() && c.EndByte() == name.EndByte() {
			continue
		}
		switch c.Kind() {
		case "type_arguments":
			e.NameEnd = int(c.EndByte())
		case "jsx_attribute":
			e.Attrs = append(e.Attrs, p.attribute(c))
		case "jsx_expression":
			pos, end := int(c.StartByte()), int(c.EndByte())
			if inner := p.firstNamed(c); inner != nil && inner.Kind() == "spread_element" {
				e.Attrs = append(e.Attrs, &SpreadAttribute{Pos: pos, End: end, Text: p.text(c)})
			} else {
				e.Attrs = append(e.Attrs, &ExprAttribute{Pos: pos, End: end, Text: p.text(c)})
			}
		}
	}
	return e
}

// firstNamed returns the first named child of n that is not a comment.
func (p *parse) firstNamed(n *tree_sitter.Node) *tree_sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if c := n.NamedChild(i); c.Kind() != "comment" {
			return c
		}
	}
	return nil
}

func (p *parse) attribute(n *tree_sitter.Node) *Attribute {
	a := &Attribute{Pos: int(n.StartByte()), End: int(n.EndByte()), Text: p.text(n)}
	var parts []*tree_sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if c := n.NamedChild(i); c.Kind() != "comment" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return a
	}
	a.Name = p.text(parts[0])
	if len(parts) < 2 {
		return a
	}
	v := parts[len(parts)-1]
	switch v.Kind() {
	case "string":
		// JSX attribute strings have no escapes.
		raw := p.text(v)
		pos, end := span(v)
		a.Value = &String{Pos: pos, End: end, Value: raw[1 : len(raw)-1], Raw: raw}
	case "jsx_expression":
		a.Container = true
		if inner := p.firstNamed(v); inner != nil && inner.Kind() != "spread_element" {
			a.Value = p.expr(inner)
		} else {
			a.Value = p.braced(v)
		}
	default:
		a.Value = p.expr(v)
	}
	return a
}

// braced returns the text between the braces of the jsx_expression n,
// trimmed of spaces, as an *Other.
func (p *parse) braced(n *tree_sitter.Node) *Other {
	pos, end := span(n)
	pos++
	if end > pos && p.src[end-1] == '}' {
		end--
	}
	for pos < end && isSpace(p.src[pos]) {
		pos++
	}
	for end > pos && isSpace(p.src[end-1]) {
		end--
	}
	return &Other{Pos: pos, End: end, Kind: n.Kind(), Raw: string(p.src[pos:end])}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *parse) expr(n *tree_sitter.Node) Expr {
	raw := p.text(n)
	pos, end := span(n)
	switch n.Kind() {
	case "string":
		return &String{Pos: pos, End: end, Value: p.stringValue(n), Raw: raw}
	case "template_string":
		return p.template(n)
	case "object":
		return p.object(n)
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return &JSX{Pos: pos, End: end, Raw: raw}
	case "parenthesized_expression":
		if inner := p.firstNamed(n); inner != nil {
			if _, ok := p.expr(inner).(*JSX); ok {
				return &JSX{Pos: pos, End: end, Raw: raw}
			}
		}
	}
	return &Other{Pos: pos, End: end, Kind: n.Kind(), Raw: raw}
}

func (p *parse) template(n *tree_sitter.Node) *Template {
	t := &Template{Raw: p.text(n)}
	t.Pos, t.End = span(n)
	var b strings.Builder
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		switch c.Kind() {
		case "string_fragment":
			b.WriteString(p.text(c))
		case "escape_sequence":
			b.WriteString(unescape(p.text(c)))
		case "template_substitution":
			t.Substitutions++
		}
	}
	t.Value = b.String()
	return t
}

func (p *parse) object(n *tree_sitter.Node) *Object {
	obj := &Object{Raw: p.text(n)}
	obj.Pos, obj.End = span(n)
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		switch c.Kind() {
		case "pair":
			kv := &KeyValue{}
			if key := c.ChildByFieldName("key"); key != nil {
				switch key.Kind() {
				case "string":
					kv.Key = p.stringValue(key)
				case "computed_property_name":
					kv.Key = p.text(key)
					kv.Computed = true
				default:
					kv.Key = p.text(key)
				}
			}
			if val := c.ChildByFieldName("value"); val != nil {
				kv.Value = p.expr(val)
			}
			obj.Props = append(obj.Props, kv)
		case "shorthand_property_identifier":
			name := p.text(c)
			pos, end := span(c)
			obj.Props = append(obj.Props, &KeyValue{Key: name, Value: &Other{Pos: pos, End: end, Kind: "identifier", Raw: name}})
		case "spread_element":
			pos, end := span(c)
			obj.Props = append(obj.Props, &Spread{Pos: pos, End: end, Raw: p.text(c)})
		case "comment":
			// ignore
		default:
			pos, end := span(c)
			obj.Props = append(obj.Props, &Method{Pos: pos, End: end, Raw: p.text(c)})
		}
	}
	return obj
}

// stringValue returns the decoded value of a JavaScript string literal node.
func (p *parse) stringValue(n *tree_sitter.Node) string {
	var b strings.Builder
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		switch c.Kind() {
		case "escape_sequence":
			b.WriteString(unescape(p.text(c)))
		default:
			b.WriteString(p.text(c))
		}
	}
	return b.String()
}

// unescape decodes a single JavaScript escape sequence such as \n or \u{1F600}.
// Unknown escapes decode to the escaped character itself.
func unescape(s string) string {
	if len(s) < 2 || s[0] != '\\' {
		return s
	}
	switch c := s[1]; c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		if len(s) == 2 {
			return "\x00"
		}
	case '\n', '\r':
		// Line continuation.
		return ""
	case 'x', 'u':
		hex := s[2:]
		if c == 'u' && strings.HasPrefix(hex, "{") {
			hex = strings.TrimSuffix(hex[1:], "}")
		}
		if r, err := strconv.ParseUint(hex, 16, 32); err == nil && utf8.ValidRune(rune(r)) {
			return string(rune(r))
		}
	}
	return s[1:]
}
