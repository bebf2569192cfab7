package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchSendsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<p>hi</p>"))
	}))
	defer srv.Close()

	res, err := New().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.HTML != "<p>hi</p>" || res.StatusCode != http.StatusOK {
		t.Errorf("unexpected result: %+v", res)
	}
	if !strings.HasPrefix(gotUA, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotAccept != AcceptHTML {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	if _, err := New().Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 410")
	}
}

func TestFetchFeedAccept(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	f := NewWithClient(srv.Client(), AcceptFeed)
	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotAccept != AcceptFeed {
		t.Errorf("Accept = %q", gotAccept)
	}
}
