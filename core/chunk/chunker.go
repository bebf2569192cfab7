// Package chunk splits text into short runs of words.
// Words are whitespace-delimited; word order is always preserved.
package chunk

import "strings"

// DefaultSize is the line length, in words, used for learner-friendly text.
const DefaultSize = 14

// Chunker splits text into consecutive groups of at most Size words.
type Chunker struct {
	Size int
}

// New creates a Chunker with the given size.
// Defaults to DefaultSize if size <= 0.
func New(size int) *Chunker {
	if size <= 0 {
		size = DefaultSize
	}
	return &Chunker{Size: size}
}

// Chunk returns text unchanged (trimmed) when it already fits in one chunk,
// otherwise the words regrouped into chunks of Size words; the last chunk
// may be shorter.
func (c *Chunker) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if len(words) <= c.Size {
		return []string{strings.TrimSpace(text)}
	}

	chunks := make([]string, 0, (len(words)+c.Size-1)/c.Size)
	for i := 0; i < len(words); i += c.Size {
		end := min(i+c.Size, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// Words counts the whitespace-delimited words in text.
func Words(text string) int {
	return len(strings.Fields(text))
}
