package yaml_test

import (
	"testing"

	karyajson "github.com/karya-io/karyajson"
	"github.com/karya-io/karyajson/yaml"
)

func TestParse(t *testing.T) {
	doc := []byte(`
name: alice
age: 30
score: 98.6
active: true
note: null
tags:
  - x
  - y
meta:
  depth: 2
`)
	v, err := yaml.Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := karyajson.Obj{
		"name":   karyajson.Str("alice"),
		"age":    karyajson.Int(30),
		"score":  karyajson.Float(98.6),
		"active": karyajson.Bool(true),
		"note":   karyajson.Null{},
		"tags":   karyajson.Arr{karyajson.Str("x"), karyajson.Str("y")},
		"meta":   karyajson.Obj{"depth": karyajson.Int(2)},
	}
	if !karyajson.Equal(want, v) {
		t.Fatalf("Parse = %#v, want %#v", v, want)
	}
}

func TestParse_MatchesJSONParser(t *testing.T) {
	// YAML is a JSON superset; flow-style documents must produce the same
	// tree as the core parser.
	doc := `{"id": 1, "tags": ["x", "y"], "ok": true}`
	want, err := karyajson.Parse(doc)
	if err != nil {
		t.Fatalf("core Parse failed: %v", err)
	}
	got, err := yaml.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("yaml.Parse failed: %v", err)
	}
	if !karyajson.Equal(want, got) {
		t.Fatalf("yaml tree differs: %#v vs %#v", got, want)
	}
}

func TestParseAll(t *testing.T) {
	doc := []byte("a: 1\n---\nb: 2\n---\n- 3\n")
	vs, err := yaml.ParseAll(doc)
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(vs))
	}
	if !karyajson.Equal(vs[0], karyajson.Obj{"a": karyajson.Int(1)}) {
		t.Fatalf("doc 0 = %#v", vs[0])
	}
	if !karyajson.Equal(vs[1], karyajson.Obj{"b": karyajson.Int(2)}) {
		t.Fatalf("doc 1 = %#v", vs[1])
	}
	if !karyajson.Equal(vs[2], karyajson.Arr{karyajson.Int(3)}) {
		t.Fatalf("doc 2 = %#v", vs[2])
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := yaml.Parse(nil); err == nil {
		t.Fatalf("empty input should fail")
	}
	vs, err := yaml.ParseAll(nil)
	if err != nil {
		t.Fatalf("ParseAll of empty input failed: %v", err)
	}
	if len(vs) != 0 {
		t.Fatalf("expected no documents, got %d", len(vs))
	}
}

func TestParse_RenderableAsJSON(t *testing.T) {
	v, err := yaml.Parse([]byte("items:\n  - id: 1\n  - id: 2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := karyajson.MarshalString(v)
	back, err := karyajson.Parse(out)
	if err != nil {
		t.Fatalf("reparse of %s failed: %v", out, err)
	}
	if !karyajson.Equal(v, back) {
		t.Fatalf("yaml tree did not survive JSON round trip")
	}
}
