package logger

import "regexp"

// Sanitizer masks embedded literals in SQL text before it is logged.
// Statements reach this library because they failed; failed statements
// frequently embed user data inline, so the raw text never goes to a log.
type Sanitizer struct {
	maskValue string
	patterns  []*regexp.Regexp
}

var literalPatterns = []*regexp.Regexp{
	// Single-quoted string literals, with '' escapes.
	regexp.MustCompile(`'(?:[^']|'')*'`),
	// Numeric literals following a comparison or assignment.
	regexp.MustCompile(`(?i)(=|<>|!=|<=?|>=?|\bin\s*\(|\bvalues\s*\(|,)\s*\d+(?:\.\d+)?`),
}

// NewSanitizer creates a sanitizer that replaces literals with mask.
// An empty mask falls back to a question mark placeholder.
func NewSanitizer(mask string) *Sanitizer {
	if mask == "" {
		mask = "?"
	}
	return &Sanitizer{
		maskValue: mask,
		patterns:  literalPatterns,
	}
}

// MaskSQL returns sql with string and trailing numeric literals replaced by
// the mask value. The original string is not modified.
func (s *Sanitizer) MaskSQL(sql string) string {
	if sql == "" {
		return sql
	}
	masked := s.patterns[0].ReplaceAllString(sql, s.maskValue)
	masked = s.patterns[1].ReplaceAllString(masked, "${1} "+s.maskValue)
	return masked
}
