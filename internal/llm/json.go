package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeJSON unmarshals the first JSON value found in raw model output into
// dst. Models wrap JSON in markdown fences or surround it with prose, so the
// text is cleaned before decoding.
func decodeJSON(raw string, dst any) error {
	block := firstJSONValue(stripCodeFences(raw))
	if block == "" {
		return fmt.Errorf("%w: no JSON value in response", ErrInvalidOutput)
	}
	if err := json.Unmarshal([]byte(block), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}

// stripCodeFences drops markdown fence lines (```json, ```latex, ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstJSONValue returns the first balanced object or array in s, tracking
// string literals so braces inside values do not confuse the depth count.
func firstJSONValue(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}
	opener, closer := s[start], byte('}')
	if opener == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == opener:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
