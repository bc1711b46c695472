package bmecat

import (
	"testing"

	"github.com/beevik/etree"
)

func parse(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("parse test document: %v", err)
	}
	return doc.Root()
}

func TestFind_FirstInDocumentOrder(t *testing.T) {
	root := parse(t, `<ROOT>
		<A><NAME>first</NAME></A>
		<NAME>second</NAME>
	</ROOT>`)

	el := Find(root, "NAME")
	if el == nil {
		t.Fatal("Find returned nil")
	}
	if got := el.Text(); got != "first" {
		t.Errorf("Find text = %q, want %q (nested element comes first in document order)", got, "first")
	}
}

func TestFind_NeverMatchesScope(t *testing.T) {
	root := parse(t, `<NAME><NAME>inner</NAME></NAME>`)

	el := Find(root, "NAME")
	if el == nil {
		t.Fatal("Find returned nil")
	}
	if got := el.Text(); got != "inner" {
		t.Errorf("Find matched the scope element itself, text = %q", got)
	}
}

func TestFindAttr(t *testing.T) {
	root := parse(t, `<ROOT>
		<ID type="duns">111</ID>
		<ID type="gln">222</ID>
	</ROOT>`)

	el := FindAttr(root, "ID", "type", "gln")
	if el == nil {
		t.Fatal("FindAttr returned nil")
	}
	if got := el.Text(); got != "222" {
		t.Errorf("FindAttr text = %q, want %q", got, "222")
	}

	if el := FindAttr(root, "ID", "type", "buyer_specific"); el != nil {
		t.Errorf("FindAttr for missing attr value = %v, want nil", el)
	}
}

func TestFindAll_DocumentOrder(t *testing.T) {
	root := parse(t, `<ROOT>
		<KEYWORD>a</KEYWORD>
		<SUB><KEYWORD>b</KEYWORD></SUB>
		<KEYWORD>c</KEYWORD>
	</ROOT>`)

	els := FindAll(root, "KEYWORD")
	if len(els) != 3 {
		t.Fatalf("FindAll returned %d elements, want 3", len(els))
	}
	want := []string{"a", "b", "c"}
	for i, el := range els {
		if el.Text() != want[i] {
			t.Errorf("FindAll[%d] = %q, want %q", i, el.Text(), want[i])
		}
	}
}

func TestChildren_DirectOnly(t *testing.T) {
	root := parse(t, `<ROOT>
		<ITEM>direct</ITEM>
		<SUB><ITEM>nested</ITEM></SUB>
	</ROOT>`)

	els := Children(root, "ITEM")
	if len(els) != 1 {
		t.Fatalf("Children returned %d elements, want 1", len(els))
	}
	if got := els[0].Text(); got != "direct" {
		t.Errorf("Children[0] = %q, want %q", got, "direct")
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{"plain", `<R><V>hello</V></R>`, "hello"},
		{"trimmed", `<R><V>  spaced  </V></R>`, "spaced"},
		{"absent", `<R></R>`, ""},
		{"empty", `<R><V></V></R>`, ""},
		{"not provided sentinel", `<R><V>-</V></R>`, ""},
		{"sentinel prefix", `<R><V>- nicht vorhanden</V></R>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parse(t, tt.xml)
			if got := Text(root, "V"); got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextAttr(t *testing.T) {
	root := parse(t, `<R>
		<DESC lang="eng">english</DESC>
		<DESC lang="ger">german</DESC>
		<DESC>plain</DESC>
	</R>`)

	if got := TextAttr(root, "DESC", "lang", "ger"); got != "german" {
		t.Errorf("TextAttr(ger) = %q, want %q", got, "german")
	}
	if got := TextAttr(root, "DESC", "lang", "fra"); got != "" {
		t.Errorf("TextAttr(fra) = %q, want empty", got)
	}
}

func TestTextNoLang(t *testing.T) {
	root := parse(t, `<R>
		<DESC lang="eng">english</DESC>
		<DESC>plain</DESC>
	</R>`)

	if got := TextNoLang(root, "DESC"); got != "plain" {
		t.Errorf("TextNoLang = %q, want %q", got, "plain")
	}

	onlyTagged := parse(t, `<R><DESC lang="eng">english</DESC></R>`)
	if got := TextNoLang(onlyTagged, "DESC"); got != "" {
		t.Errorf("TextNoLang with only tagged elements = %q, want empty", got)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want *bool
	}{
		{"true", `<R><F>true</F></R>`, boolPtr(true)},
		{"TRUE", `<R><F>TRUE</F></R>`, boolPtr(true)},
		{"false", `<R><F>false</F></R>`, boolPtr(false)},
		{"other text is false", `<R><F>yes</F></R>`, boolPtr(false)},
		{"absent", `<R></R>`, nil},
		{"sentinel", `<R><F>-</F></R>`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parse(t, tt.xml)
			got := Bool(root, "F")
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("Bool = nil, want %v", *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("Bool = %v, want nil", *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("Bool = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	root := parse(t, `<R><N>42</N></R>`)
	got, err := Int(root, "N")
	if err != nil {
		t.Fatalf("Int error = %v", err)
	}
	if got == nil || *got != 42 {
		t.Errorf("Int = %v, want 42", got)
	}
}

func TestInt_AbsentIsNil(t *testing.T) {
	root := parse(t, `<R></R>`)
	got, err := Int(root, "N")
	if err != nil {
		t.Fatalf("Int error = %v", err)
	}
	if got != nil {
		t.Errorf("Int for absent element = %v, want nil", *got)
	}
}

func TestIntAttr(t *testing.T) {
	root := parse(t, `<R><N type="a">1</N><N type="b">2</N></R>`)
	got, err := IntAttr(root, "N", "type", "b")
	if err != nil {
		t.Fatalf("IntAttr error = %v", err)
	}
	if got == nil || *got != 2 {
		t.Errorf("IntAttr = %v, want 2", got)
	}

	got, err = IntAttr(root, "N", "type", "c")
	if err != nil {
		t.Fatalf("IntAttr error = %v", err)
	}
	if got != nil {
		t.Errorf("IntAttr for unmatched attribute = %v, want nil", *got)
	}
}

func TestInt_NonNumericIsError(t *testing.T) {
	root := parse(t, `<R><N>soon</N></R>`)
	_, err := Int(root, "N")
	if err == nil {
		t.Fatal("Int expected error for non-numeric text")
	}
}

func TestStripNamespaces(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<bme:BMECAT xmlns:bme="http://www.bmecat.org/bmecat/2005">
		<bme:HEADER><bme:CATALOG_ID>C1</bme:CATALOG_ID></bme:HEADER>
	</bme:BMECAT>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	StripNamespaces(doc)

	if got := Text(doc.Root(), "CATALOG_ID"); got != "C1" {
		t.Errorf("Text after StripNamespaces = %q, want %q", got, "C1")
	}
}

func boolPtr(b bool) *bool { return &b }
