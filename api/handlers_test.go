package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gaurav-prasanna/easyread/core/rewrite"
)

func newTestServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	obs, logs := observer.New(zap.InfoLevel)
	log := zap.New(obs)
	s := NewServer(DefaultConfig(), rewrite.New(log), log)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, logs
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *Error          `json:"error"`
	Meta    Meta            `json:"meta"`
}

func post(t *testing.T, ts *httptest.Server, path, body string) (int, envelope) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if env.Meta.Timestamp == "" {
		t.Error("missing meta.timestamp")
	}
	return resp.StatusCode, env
}

func TestRewriteText(t *testing.T) {
	ts, logs := newTestServer(t)

	status, env := post(t, ts, "/api/rewrite",
		`{"text":"We will utilize the tool (see notes) today.","difficulty":"intermediate"}`)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", status, env.Success)
	}
	var res TextResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Text != "We will use the tool today." {
		t.Errorf("text = %q", res.Text)
	}
	if logs.FilterMessage("request").Len() == 0 {
		t.Error("expected a request log entry")
	}
}

func TestRewriteTextDefaultsToOriginal(t *testing.T) {
	ts, _ := newTestServer(t)

	_, env := post(t, ts, "/api/rewrite", `{"text":"  utilize this  "}`)
	var res TextResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Text != "utilize this" {
		t.Errorf("text = %q, want whitespace-normalized original", res.Text)
	}
}

func TestRewriteBlankInput(t *testing.T) {
	ts, _ := newTestServer(t)

	// Blank input short-circuits before the level is checked.
	for _, tc := range []struct{ path, body, key string }{
		{"/api/rewrite", `{"text":"   ","difficulty":"bogus"}`, "text"},
		{"/api/rewrite-html", `{"html":"","difficulty":"simple"}`, "html"},
	} {
		status, env := post(t, ts, tc.path, tc.body)
		if status != http.StatusOK {
			t.Errorf("%s: status = %d", tc.path, status)
		}
		var data map[string]string
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatal(err)
		}
		if data[tc.key] != "" {
			t.Errorf("%s: %s = %q, want empty", tc.path, tc.key, data[tc.key])
		}
	}
}

func TestRewriteHTML(t *testing.T) {
	ts, _ := newTestServer(t)

	status, env := post(t, ts, "/api/rewrite-html",
		`{"html":"<p class=\"x\">Please commence now.</p>","difficulty":"simple"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var res HTMLResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.HTML != `<p class="x">Please start now.</p>` {
		t.Errorf("html = %q", res.HTML)
	}
}

func TestRewriteErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"invalid difficulty", "/api/rewrite", `{"text":"hi","difficulty":"expert"}`, http.StatusBadRequest, "INVALID_DIFFICULTY"},
		{"invalid html difficulty", "/api/rewrite-html", `{"html":"<p>hi</p>","difficulty":"Simple"}`, http.StatusBadRequest, "INVALID_DIFFICULTY"},
		{"bad json", "/api/rewrite", `{"text":`, http.StatusBadRequest, "BAD_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := post(t, ts, tt.path, tt.body)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
		})
	}
}

func TestDifficultyMustMatchExactly(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, difficulty := range []string{`""`, `" simple "`, `"SIMPLE"`} {
		for _, tc := range []struct{ path, body string }{
			{"/api/rewrite", `{"text":"We utilize it.","difficulty":` + difficulty + `}`},
			{"/api/rewrite-html", `{"html":"<p>We utilize it.</p>","difficulty":` + difficulty + `}`},
		} {
			status, env := post(t, ts, tc.path, tc.body)
			if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != "INVALID_DIFFICULTY" {
				t.Errorf("%s difficulty=%s: status = %d, error = %+v", tc.path, difficulty, status, env.Error)
			}
		}
	}
}

func TestRewriteHTMLDefaultsToOriginal(t *testing.T) {
	ts, _ := newTestServer(t)

	status, env := post(t, ts, "/api/rewrite-html", `{"html":"<p>We utilize it.</p>"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var res HTMLResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.HTML != "<p>We utilize it.</p>" {
		t.Errorf("html = %q", res.HTML)
	}
}

type brokenWriter struct {
	header http.Header
}

func (b *brokenWriter) Header() http.Header       { return b.header }
func (b *brokenWriter) WriteHeader(int)           {}
func (b *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteFailureIsLogged(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	s := NewServer(DefaultConfig(), rewrite.New(nil), zap.New(obs))

	s.respond(&brokenWriter{header: http.Header{}}, http.StatusOK, TextResult{Text: "x"})

	if logs.FilterMessage("writing response").Len() != 1 {
		t.Errorf("expected one write failure log, got %d entries", logs.Len())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/rewrite")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestBodyTooLarge(t *testing.T) {
	s := NewServer(DefaultConfig(), rewrite.New(nil), nil)

	body := `{"text":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rewrite", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Error == nil || env.Error.Code != "TOO_LARGE" {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	var info HealthInfo
	if err := json.Unmarshal(env.Data, &info); err != nil {
		t.Fatal(err)
	}
	if info.Status != "ok" || len(info.Levels) != 3 {
		t.Errorf("health = %+v", info)
	}
}
