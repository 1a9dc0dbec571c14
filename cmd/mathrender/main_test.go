package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	mathresolver "github.com/njchilds90/mathresolver"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte("style: greek\ndomain: set\nspans: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != "greek" || cfg.Domain != "set" || !cfg.Spans || cfg.Measure != "cell" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if _, err := parseConfig([]byte("colour: red\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestConfigMerge(t *testing.T) {
	file := config{Style: "greek", Domain: "set", Measure: "face"}
	flags := config{Style: "default", Domain: "algebra", Measure: "cell", Spans: true}
	got := file.merge(flags, map[string]bool{"domain": true, "spans": true})
	want := config{Style: "greek", Domain: "algebra", Measure: "face", Spans: true}
	if got != want {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestConfigResolver(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	r, err := config{Style: "greek", Domain: "set", Measure: "face"}.resolver(logger)
	if err != nil {
		t.Fatal(err)
	}
	if r.Style() != mathresolver.StyleGreek || r.Domain() != mathresolver.DomainSet {
		t.Errorf("unexpected resolver settings: %v %v", r.Style(), r.Domain())
	}
	for _, bad := range []config{{Style: "x"}, {Domain: "x"}, {Measure: "ruler"}, {Catalog: "/nonexistent/ops.yaml"}} {
		if _, err := bad.resolver(logger); err == nil {
			t.Errorf("%+v: expected error", bad)
		}
	}
}

func TestPrinter_Plain(t *testing.T) {
	r := mathresolver.NewResolver(mathresolver.WithStyle(mathresolver.StyleGreek))
	res, err := r.ResolveStructure("(+(A;1))")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	p := &printer{out: &buf, spans: true}
	p.print(res)
	want := "α+1\nspan row=0 cols=[0,1) scale=1.000\n"
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestPrinter_Styled(t *testing.T) {
	r := mathresolver.NewResolver(mathresolver.WithStyle(mathresolver.StyleGreek))
	res, err := r.ResolveStructure("(+(/(A;B);x))")
	if err != nil {
		t.Fatal(err)
	}
	rows := highlight(res)
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	if !strings.Contains(rows[0], "α") || !strings.Contains(rows[1], "—+x") {
		t.Errorf("unexpected rows: %q", rows)
	}
	var buf bytes.Buffer
	(&printer{out: &buf, styled: true}).print(res)
	if !strings.Contains(buf.String(), "β") {
		t.Errorf("framed output lost a glyph: %q", buf.String())
	}
}

func TestRenderRule(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{out: &buf}
	r := mathresolver.NewResolver()
	if err := renderRule(p, r, "(+(a;b))", "(+(b;a))"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a+b → b+a\n" {
		t.Errorf("want 'a+b → b+a', got %q", buf.String())
	}
	if err := renderRule(p, r, "(+(a;b)", "(a)"); err == nil {
		t.Error("expected error for malformed side")
	}
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("(a)\n\n  (+(a;b))  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1] != "(+(a;b))" {
		t.Errorf("unexpected lines: %q", lines)
	}
}
