package kaikki

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize is the buffer size for bufio.Scanner (16 MB).
// Some entries (long translation tables) exceed the default 64 KB.
const maxLineSize = 16 << 20

// DecodeLines streams a JSONL dump, invoking fn for every decoded entry.
// Returns the number of lines consumed. A malformed line is a hard
// failure: the scan stops and the error names the offending line.
func DecodeLines(r io.Reader, fn func(entry *WordEntry) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	lines := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		lines++

		var entry WordEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return lines, fmt.Errorf("decode line %d: %w", lines, err)
		}
		if err := fn(&entry); err != nil {
			return lines, err
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("scan: %w", err)
	}
	return lines, nil
}
