// Package telemetry holds helpers that keep rider data out of logs.
package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// PIILevel controls how query values are written to logs.
type PIILevel string

const (
	// PIILevelNone drops every value.
	PIILevelNone PIILevel = "none"
	// PIILevelHashed replaces each value with a salted hash prefix.
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull logs values as received.
	PIILevelFull PIILevel = "full"
)

const redacted = "[REDACTED]"

// ParsePIILevel validates a configured level. An empty string means hashed.
func ParsePIILevel(s string) (PIILevel, error) {
	switch PIILevel(strings.ToLower(strings.TrimSpace(s))) {
	case "", PIILevelHashed:
		return PIILevelHashed, nil
	case PIILevelNone:
		return PIILevelNone, nil
	case PIILevelFull:
		return PIILevelFull, nil
	default:
		return "", fmt.Errorf("unknown PII level %q", s)
	}
}

// Sanitizer rewrites locations and other free text before it reaches a log.
type Sanitizer struct {
	level PIILevel
	salt  string
}

// NewSanitizer creates a sanitizer. Unknown levels behave like hashed.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{level: level, salt: salt}
}

// Level returns the effective level.
func (s *Sanitizer) Level() PIILevel {
	switch s.level {
	case PIILevelNone, PIILevelFull:
		return s.level
	default:
		return PIILevelHashed
	}
}

// SanitizeValue sanitizes a single value. Empty values stay empty so logs
// still show which parameters were left blank.
func (s *Sanitizer) SanitizeValue(v string) string {
	if v == "" {
		return ""
	}
	switch s.Level() {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return v
	default:
		return "h:" + s.hash(v)
	}
}

// SanitizeQuery sanitizes every value of a raw query string. Keys are kept
// and emitted in sorted order.
func (s *Sanitizer) SanitizeQuery(rawQuery string) string {
	if rawQuery == "" || s.Level() == PIILevelFull {
		return rawQuery
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return redacted
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(s.SanitizeValue(v)))
		}
	}
	return b.String()
}

func (s *Sanitizer) hash(data string) string {
	h := sha256.New()
	h.Write([]byte(data + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:8]
}
