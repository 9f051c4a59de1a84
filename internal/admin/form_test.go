package admin

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/designfolio/internal/service"
)

func TestSplitComma(t *testing.T) {
	cases := map[string][]string{
		"React, Design":     {"React", "Design"},
		" Web ,, Mobile , ": {"Web", "Mobile"},
		"":                  {},
		"   ":               {},
		"UX\nUI":            {"UX", "UI"},
		"single":            {"single"},
	}
	for input, want := range cases {
		if got := SplitComma(input); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitComma(%q) = %#v, want %#v", input, got, want)
		}
	}
}

func TestSplitLinesDropsBlankLines(t *testing.T) {
	got := SplitLines("Primeiro parágrafo, com vírgula.\n\n   \r\nSegundo parágrafo.")
	want := []string{"Primeiro parágrafo, com vírgula.", "Segundo parágrafo."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	if got := SplitLines(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestFormFromJSONFlattensArrays(t *testing.T) {
	form := FormFromJSON(map[string]any{
		"tags":  []any{"React", "Design"},
		"order": float64(3),
		"title": " App ",
		"skip":  nil,
	})
	if form["tags"] != "React\nDesign" {
		t.Fatalf("unexpected tags %q", form["tags"])
	}
	if form.Get("title") != "App" || form["order"] != "3" {
		t.Fatalf("unexpected form %#v", form)
	}
	if _, ok := form["skip"]; ok {
		t.Fatal("expected null to be skipped")
	}
	if !reflect.DeepEqual(SplitComma(form["tags"]), []string{"React", "Design"}) {
		t.Fatal("expected json arrays to split back")
	}
}

func TestFormFromValues(t *testing.T) {
	form := FormFromValues(url.Values{"name": {"Figma", "ignored"}})
	if form.Get("name") != "Figma" {
		t.Fatalf("unexpected form %#v", form)
	}
}

func TestOptionalInt(t *testing.T) {
	if v, err := optionalInt(Form{}, "order"); v != nil || err != nil {
		t.Fatalf("expected nil for missing, got %v %v", v, err)
	}
	if v, err := optionalInt(Form{"order": "4"}, "order"); err != nil || *v != 4 {
		t.Fatalf("expected 4, got %v %v", v, err)
	}
	if _, err := optionalInt(Form{"order": "x"}, "order"); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
