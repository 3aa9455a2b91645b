package models

import "strings"

// DownloadCode is what the user typed into the code field together with
// the form that is actually submitted.
type DownloadCode struct {
	Raw        string
	Normalized string
}

// NewDownloadCode normalizes raw immediately.
func NewDownloadCode(raw string) DownloadCode {
	return DownloadCode{Raw: raw, Normalized: NormalizeCode(raw)}
}

// SetRaw records a new input value and re-derives the normalized form.
// Call it on every input event, not only on submit.
func (c *DownloadCode) SetRaw(raw string) {
	c.Raw = raw
	c.Normalized = NormalizeCode(raw)
}

// IsEmpty reports whether nothing submittable is left after normalization.
func (c DownloadCode) IsEmpty() bool {
	return c.Normalized == ""
}

// NormalizeCode uppercases s and drops every character outside A-Z and 0-9.
// It is idempotent.
func NormalizeCode(s string) string {
	upper := strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
