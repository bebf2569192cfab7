package chunk

import (
	"strings"
	"testing"
)

func TestChunkShortTextKeptWhole(t *testing.T) {
	c := New(14)
	got := c.Chunk("  We  start on Monday.  ")
	if len(got) != 1 || got[0] != "We  start on Monday." {
		t.Errorf("got %q", got)
	}
}

func TestChunkSplitsLongText(t *testing.T) {
	words := make([]string, 30)
	for i := range words {
		words[i] = "w"
	}
	c := New(14)
	got := c.Chunk(strings.Join(words, " "))
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %q", len(got), got)
	}
	wantSizes := []int{14, 14, 2}
	for i, chunk := range got {
		if n := Words(chunk); n != wantSizes[i] {
			t.Errorf("chunk %d: %d words, want %d", i, n, wantSizes[i])
		}
	}
}

func TestChunkPreservesOrder(t *testing.T) {
	c := New(2)
	got := c.Chunk("one two three four five")
	want := []string{"one two", "three four", "five"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChunkEmpty(t *testing.T) {
	if got := New(0).Chunk(" \n\t "); got != nil {
		t.Errorf("expected nil, got %q", got)
	}
	if New(0).Size != DefaultSize {
		t.Errorf("expected default size %d", DefaultSize)
	}
}
