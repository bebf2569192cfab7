package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/easyread/core"
)

func TestFlatName(t *testing.T) {
	tests := map[string]string{
		"https://example.com/docs/intro/": "example_com_docs_intro",
		"https://example.com":             "example_com",
		"https://a-b.org/2024/rates.html": "a-b_org_2024_rates_html",
	}
	for in, want := range tests {
		if got := FlatName(in); got != want {
			t.Errorf("FlatName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrite(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := w.Write("https://example.com/post", core.Simple, []byte("hi"), ".md")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "example_com_post.simple.md" {
		t.Errorf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hi" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
}

func TestWriteTree(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := w.WriteTree("https://example.com/news/../rates", core.Intermediate, []byte("x"), ".json")
	if err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	want := filepath.Join(dir, "example_com", "news", "rates.intermediate.json")
	if path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	path, err = w.WriteTree("https://example.com/", core.Original, []byte("x"), ".md")
	if err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	if filepath.Base(path) != "index.original.md" {
		t.Errorf("path = %s", path)
	}
}
