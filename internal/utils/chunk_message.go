package utils

import "strings"

// ChunkMessage splits a message into pieces no longer than chunkSize,
// preferring line boundaries so a single game line is never split across two
// Discord messages.
func ChunkMessage(message string, chunkSize int) []string {
	if len(message) <= chunkSize {
		return []string{message}
	}

	var chunks []string
	for len(message) > chunkSize {
		cut := strings.LastIndex(message[:chunkSize], "\n")
		if cut <= 0 {
			cut = chunkSize
		}
		chunks = append(chunks, message[:cut])
		message = strings.TrimPrefix(message[cut:], "\n")
	}
	if len(message) > 0 {
		chunks = append(chunks, message)
	}

	return chunks
}
