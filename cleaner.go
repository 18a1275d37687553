package uniapply

import (
	"regexp"
	"strings"
)

// Precompiled patterns for inline LaTeX cleanup.
var (
	boldCmd      = regexp.MustCompile(`\\textbf\{([^{}]*)\}`)
	italicCmd    = regexp.MustCompile(`\\textit\{([^{}]*)\}`)
	emphCmd      = regexp.MustCompile(`\\emph\{([^{}]*)\}`)
	underlineCmd = regexp.MustCompile(`\\underline\{([^{}]*)\}`)
	hrefCmd      = regexp.MustCompile(`\\href\{[^{}]*\}\{([^{}]*)\}`)
	vspaceCmd    = regexp.MustCompile(`\\vspace\*?\{[^{}]*\}`)
)

// cleanText normalizes inline LaTeX markup in a field value to HTML.
// Bold and italic commands become <b>/<i> tags, underline is unwrapped,
// hyperlinks keep only their visible text, and spacing control sequences,
// line breaks, and leftover braces are stripped. The transformation is
// idempotent: cleaning already-cleaned text is a no-op.
func cleanText(s string) string {
	s = boldCmd.ReplaceAllString(s, "<b>$1</b>")
	s = italicCmd.ReplaceAllString(s, "<i>$1</i>")
	s = emphCmd.ReplaceAllString(s, "<i>$1</i>")
	s = underlineCmd.ReplaceAllString(s, "$1")
	s = hrefCmd.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, `\hfill`, "")
	s = vspaceCmd.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, `\small`, "")
	s = strings.ReplaceAll(s, `$|$`, " | ")
	s = strings.ReplaceAll(s, `\\`, "")
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	return strings.TrimSpace(s)
}
