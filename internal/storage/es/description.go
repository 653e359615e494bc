package es

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrUnsupportedToken = errors.New("unsupported token kind for metadata description")

// MetadataDescription is the metatag.description field as stored by the
// crawler. Depending on the Elasticsearch version it arrives as a string, an
// array of strings or an array of arrays of strings; it always decodes to a
// single string.
type MetadataDescription string

// UnmarshalJSON keeps the first string found after descending through any
// array wrappers. An empty array yields "". Numbers, booleans and objects
// are rejected with ErrUnsupportedToken.
func (d *MetadataDescription) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read metadata description: %w", err)
	}

	for tok == json.Delim('[') {
		tok, err = dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("truncated metadata description: %w", io.ErrUnexpectedEOF)
			}
			return fmt.Errorf("failed to read metadata description: %w", err)
		}
	}

	switch v := tok.(type) {
	case string:
		*d = MetadataDescription(v)
		return nil
	case json.Delim:
		if v == ']' {
			*d = ""
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedToken, v.String())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedToken, tokenKind(tok))
	}
}

func tokenKind(tok json.Token) string {
	switch tok.(type) {
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
