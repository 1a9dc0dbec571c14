package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mathresolver "github.com/njchilds90/mathresolver"
)

func post(t *testing.T, mux http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tool", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestTool_Render(t *testing.T) {
	rec := post(t, newMux(""), `{"tool":"render","params":{"expr":"(+(a;b))"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	var resp mathresolver.ToolResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.String != "a+b\n" {
		t.Errorf("want a+b, got %q", resp.String)
	}
}

func TestTool_DefaultCatalog(t *testing.T) {
	catalog := "operations:\n  - tokens: [\"+\"]\n    category: plus\n    display: \"⊕\"\n"
	mux := newMux(catalog)

	var resp mathresolver.ToolResponse
	rec := post(t, mux, `{"tool":"render","params":{"expr":"(+(a;b))"}}`)
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.String != "a⊕b\n" {
		t.Errorf("server catalog not applied, got %q", resp.String)
	}

	rec = post(t, mux, `{"tool":"render"}`)
	resp = mathresolver.ToolResponse{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Error, "missing param: expr") {
		t.Errorf("want missing param error, got %q", resp.Error)
	}
}

func TestTool_BadRequests(t *testing.T) {
	mux := newMux("")
	for _, body := range []string{
		`{"tool":`,
		`{"tool":"render","extra":1}`,
		`{"tool":"render"} {"tool":"render"}`,
	} {
		if rec := post(t, mux, body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: want 400, got %d", body, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/tool", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("want 405, got %d", rec.Code)
	}
}

func TestSchemaAndHealth(t *testing.T) {
	mux := newMux("")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	if !strings.Contains(rec.Body.String(), "render_rule") {
		t.Errorf("schema should list render_rule, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var m map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
		t.Fatal(err)
	}
	if m["status"] != "ok" {
		t.Errorf("want status ok, got %v", m["status"])
	}
}
