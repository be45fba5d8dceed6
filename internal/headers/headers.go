package headers

import (
	"strings"
)

// Headers holds request header fields exactly as they appeared on the wire.
// Names are not canonicalized and values keep any whitespace that followed
// the colon.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// ParseLine splits line at its first colon and stores the pair, replacing
// any earlier value for the same name. It reports false when line has no
// colon and is therefore not a header line.
func (h Headers) ParseLine(line string) bool {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return false
	}
	h.Set(name, value)
	return true
}

func (h Headers) Set(key, value string) {
	h[key] = value
}

// Get returns the raw value stored under key. An exact match is preferred;
// otherwise the first case-insensitive match is returned.
func (h Headers) Get(key string) (value string) {
	if v, ok := h[key]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
