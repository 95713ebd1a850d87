// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"reflect"
	"testing"

	"rsc.io/iconmig/jsx"
)

// parseElement parses src and returns its first element.
func parseElement(t *testing.T, src string) (*jsx.File, *jsx.Element) {
	t.Helper()
	f, err := jsx.Parse("x.tsx", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Elements) == 0 {
		t.Fatalf("no elements in %q", src)
	}
	return f, f.Elements[0]
}

var classifyTests = []struct {
	src  string
	spec Spec
}{
	{`<Button label="x" />`, nil},
	{`<Button icon="ic_home" />`, &LiteralName{Name: "ic_home"}},
	{`<Button icon={"ic_home"} />`, &LiteralName{Name: "ic_home"}},
	{"<Button icon={`ic_home`} />", &LiteralName{Name: "ic_home"}},
	{"<Button icon={`ic_${name}`} />", &Unrecognized{Reason: "template literal with substitutions"}},
	{`<Button icon={name} />`, &Unrecognized{Reason: "unsupported expression"}},
	{`<Button icon={cond ? "a" : "b"} />`, &Unrecognized{Reason: "unsupported expression"}},
	{`<Button icon />`, &Unrecognized{Reason: "icon attribute has no value"}},
	{`<Button icon="a" icon="b" />`, &Unrecognized{Reason: "more than one icon attribute"}},
	{`<Button icon={<Home />} />`, &Unrecognized{Benign: true, Reason: "already a JSX element"}},
	{`<Button icon={(<Home />)} />`, &Unrecognized{Benign: true, Reason: "already a JSX element"}},
	{`<Button icon={<></>} />`, &Unrecognized{Benign: true, Reason: "already a JSX element"}},
	{`<Button icon={{}} />`, &Unrecognized{Reason: "empty icon object"}},
	{`<Button icon={{ color: "red" }} />`, &Unrecognized{Reason: "icon object has no icon key"}},
	{`<Button icon={{ icon: name }} />`, &Unrecognized{Reason: "icon object has no icon key"}},
	{`<Button icon={{ icon: "a", [k]: 1 }} />`, &Unrecognized{Reason: "computed key [k] in icon object"}},
	{`<Button icon={{ icon: "a", get x() { return 1 } }} />`, &Unrecognized{Reason: "method in icon object"}},
	{`<Button icon={{ icon: "a", 0: 1 }} />`, &Unrecognized{Reason: "key 0 is not an attribute name"}},
	{
		`<Button icon={{ icon: "ic_star", color, "aria-label": "a b", title: 'it"s', ...rest }} />`,
		&ObjectForm{
			IconName: "ic_star",
			HasIcon:  true,
			Extra: []Prop{
				{Name: "color", Text: "color={color}"},
				{Name: "aria-label", Text: `aria-label="a b"`},
				{Name: "title", Text: `title={'it"s'}`},
				{Text: "{...rest}"},
			},
		},
	},
	{
		`<Button icon={{ ...base }} />`,
		&ObjectForm{Extra: []Prop{{Text: "{...base}"}}},
	},
	{
		`<Button icon={{ icon: "a", icon: "b" }} />`,
		&ObjectForm{IconName: "b", HasIcon: true},
	},
}

func TestClassify(t *testing.T) {
	rule := &Rule{Name: "Button", Transfer: []string{"color"}}
	for _, tt := range classifyTests {
		_, e := parseElement(t, tt.src)
		c := Classify(e.Attrs, rule)
		if !reflect.DeepEqual(withoutSources(c.Spec), tt.spec) {
			t.Errorf("Classify(%s) = %#v, want %#v", tt.src, c.Spec, tt.spec)
		}
	}
}

// withoutSources returns s with the source records of
// object props cleared.
func withoutSources(s Spec) Spec {
	form, ok := s.(*ObjectForm)
	if !ok {
		return s
	}
	clean := *form
	clean.Extra = nil
	for _, p := range form.Extra {
		p.src = nil
		clean.Extra = append(clean.Extra, p)
	}
	return &clean
}

func TestObjectPropSources(t *testing.T) {
	f, e := parseElement(t, `<Button icon={{ icon: "ic_star", color, label: <b>x</b>, n: 1, ...rest, title: "t" }} />`)
	c := Classify(e.Attrs, &Rule{Name: "Button"})
	form, ok := c.Spec.(*ObjectForm)
	if !ok {
		t.Fatalf("Classify = %#v, want object form", c.Spec)
	}
	var copied []string
	for _, p := range form.Extra {
		if p.src == nil {
			continue
		}
		copied = append(copied, p.Text)
		if s := p.src.pre + f.Slice(p.src.pos, p.src.end) + p.src.post; s != p.Text {
			t.Errorf("prop %q comes from %q", p.Text, s)
		}
		if s := p.text(f); s != p.Text {
			t.Errorf("unedited prop %q reads back as %q", p.Text, s)
		}
	}
	want := []string{"color={color}", "label={<b>x</b>}", "n={1}", "{...rest}"}
	if !reflect.DeepEqual(copied, want) {
		t.Errorf("copied props = %q, want %q", copied, want)
	}
}

func TestClassifySplit(t *testing.T) {
	_, e := parseElement(t, `<Button a="1" color="red" {...p} icon="ic_x" tint="t" size={3} b />`)
	c := Classify(e.Attrs, &Rule{Name: "Button", Transfer: []string{"tint"}})
	if c.Icon == nil || c.Icon.Text != `icon="ic_x"` {
		t.Fatalf("Icon = %#v", c.Icon)
	}
	var direct, rest []string
	for _, a := range c.Direct {
		direct = append(direct, a.Text)
	}
	for _, a := range c.Remainder {
		rest = append(rest, a.Source())
	}
	if want := []string{`color="red"`, `tint="t"`, `size={3}`}; !reflect.DeepEqual(direct, want) {
		t.Errorf("Direct = %q, want %q", direct, want)
	}
	if want := []string{`a="1"`, `{...p}`, `b`}; !reflect.DeepEqual(rest, want) {
		t.Errorf("Remainder = %q, want %q", rest, want)
	}
}
