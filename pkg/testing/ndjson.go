package testing

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize bounds a single fixture document.
const maxLineSize = 16 << 20

// ReadNDJSON returns every non-blank line of r as a raw JSON object. A line
// that is not a JSON object fails the whole read with its line number.
func ReadNDJSON(r io.Reader) ([]json.RawMessage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var docs []json.RawMessage
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		if raw[0] != '{' || !json.Valid(raw) {
			return nil, fmt.Errorf("line %d: not a JSON object", line)
		}

		doc := make(json.RawMessage, len(raw))
		copy(doc, raw)
		docs = append(docs, doc)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", line+1, err)
	}

	return docs, nil
}
