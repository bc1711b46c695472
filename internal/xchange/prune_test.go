package xchange

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestPrune_RemovesEmptyLeaves(t *testing.T) {
	tree := map[string]any{
		"keep":      "value",
		"empty":     "",
		"nilval":    nil,
		"emptyList": []any{},
		"emptyMap":  map[string]any{},
	}

	got := Prune(tree).(map[string]any)

	want := map[string]any{"keep": "value"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prune = %v, want %v", got, want)
	}
}

func TestPrune_BottomUp(t *testing.T) {
	// A container whose every member prunes away is itself removed.
	tree := map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{
				"empty": "",
			},
		},
		"list": []any{
			map[string]any{"empty": ""},
			"",
		},
		"keep": "x",
	}

	got := Prune(tree).(map[string]any)

	want := map[string]any{"keep": "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prune = %v, want %v", got, want)
	}
}

func TestPrune_KeepsFalseAndZero(t *testing.T) {
	tree := map[string]any{
		"flag":  false,
		"count": float64(0),
	}

	got := Prune(tree).(map[string]any)

	if !reflect.DeepEqual(got, tree) {
		t.Errorf("Prune = %v, want %v (false and 0 are not empty)", got, tree)
	}
}

func TestPrune_Idempotent(t *testing.T) {
	tree := map[string]any{
		"a": map[string]any{"b": "", "c": "v"},
		"d": []any{"", "x", map[string]any{}},
		"e": false,
	}

	once := Prune(tree)
	twice := Prune(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Prune is not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestPrune_PreservesListOrder(t *testing.T) {
	tree := []any{"a", "", "b", "c"}

	got := Prune(tree).([]any)

	want := []any{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prune = %v, want %v", got, want)
	}
}

func TestLocalizedValue_MarshalUsesFieldName(t *testing.T) {
	v := Localize("CatalogueName", "de-DE", "Katalog")

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]string{"Language": "de-DE", "CatalogueName": "Katalog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("marshalled = %v, want %v", got, want)
	}
}

func TestTree_RoundTripsDocument(t *testing.T) {
	doc := &Document{
		CatalogueId:   "CAT-1",
		CatalogueType: "FULL",
		Language:      []string{"de-DE"},
		Supplier: []Supplier{{
			SupplierName: "ACME",
		}},
	}

	tree, err := Tree(doc)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}

	if tree["CatalogueId"] != "CAT-1" {
		t.Errorf("CatalogueId = %v, want CAT-1", tree["CatalogueId"])
	}

	pruned := Prune(tree).(map[string]any)
	if _, ok := pruned["CatalogueVersion"]; ok {
		t.Error("empty CatalogueVersion should prune away")
	}
	suppliers, ok := pruned["Supplier"].([]any)
	if !ok || len(suppliers) != 1 {
		t.Fatalf("Supplier = %v, want one entry", pruned["Supplier"])
	}
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	raw, err := Encode(map[string]any{"u": "https://example.com/a?b=1&c=2"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Contains(raw, []byte("&c=2")) {
		t.Errorf("Encode escaped ampersand: %s", raw)
	}
}
