package utils

import (
	"strings"
	"testing"
)

func TestChunkMessageShortMessage(t *testing.T) {
	chunks := ChunkMessage("hello", 2000)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("ChunkMessage short message = %v, want [hello]", chunks)
	}
}

func TestChunkMessageSplitsOnLineBoundaries(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 40),
		strings.Repeat("b", 40),
		strings.Repeat("c", 40),
	}
	message := strings.Join(lines, "\n")

	chunks := ChunkMessage(message, 90)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %v", len(chunks), chunks)
	}
	if chunks[0] != lines[0]+"\n"+lines[1] {
		t.Errorf("first chunk = %q, want first two lines", chunks[0])
	}
	if chunks[1] != lines[2] {
		t.Errorf("second chunk = %q, want last line", chunks[1])
	}
}

func TestChunkMessageHardSplitWithoutNewlines(t *testing.T) {
	message := strings.Repeat("x", 250)

	chunks := ChunkMessage(message, 100)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 100 {
			t.Errorf("chunk %d has length %d, want <= 100", i, len(chunk))
		}
	}
	if strings.Join(chunks, "") != message {
		t.Error("chunks do not reassemble into the original message")
	}
}
