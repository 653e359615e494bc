package pagination

import "strconv"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	From int `json:"from" query:"from"`
	Size int `json:"size" query:"size"`
}

// ParseOffsetRequest reads raw from/size query values. Missing or
// non-numeric values fall back to the defaults; call Validate to normalize.
func ParseOffsetRequest(from, size string) OffsetRequest {
	return OffsetRequest{
		From: atoiOr(from, PageDefaultFrom),
		Size: atoiOr(size, PageDefaultSize),
	}
}

// Validate validates and normalizes offset pagination parameters
func (r *OffsetRequest) Validate() error {
	if r.From < 0 {
		r.From = PageDefaultFrom
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	return nil
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
