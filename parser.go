package uniapply

import (
	"log/slog"
	"regexp"
	"strings"
)

// noisePrefixes are preamble and layout lines the parser skips
// unconditionally, regardless of its current state.
var noisePrefixes = []string{
	`\documentclass`,
	`\usepackage`,
	`\pagestyle`,
	`\newcommand`,
	`%`,
	`\begin{itemize}`,
	`\end{itemize}`,
	`\begin{document}`,
	`\end{document}`,
	`\resumeSubHeadingListStart`,
	`\resumeSubHeadingListEnd`,
	`\resumeItemListStart`,
	`\resumeItemListEnd`,
}

// Precompiled patterns for the line-dispatch rules.
var (
	sectionCmd    = regexp.MustCompile(`^\\section\*?\{([^{}]*)\}`)
	oldHeading    = regexp.MustCompile(`^\\textbf\{(.+?)\}\s*\\hfill\s*(.*)$`)
	oldSubheading = regexp.MustCompile(`^\\textit\{(.+?)\}\s*\\hfill\s*(.*)$`)
)

// Parse converts resume LaTeX source into a Document tree.
//
// The scan is a single line-oriented pass: each line is tried against a fixed
// rule list in order, the first match wins, and unmatched lines are skipped.
// A malformed line never aborts the rest of the document, and Parse never
// panics; on an internal fault it returns whatever tree was accumulated so
// far.
func Parse(source string) (doc *Document) {
	doc = &Document{}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("resume parse recovered", "panic", r)
		}
	}()

	lines := strings.Split(source, "\n")

	// Parser state: current insertion targets as indices into the tree, so
	// appends never invalidate them, plus the heading-block flag.
	secIdx := -1
	entryIdx := -1
	insideHeading := false

	curSection := func() *Section { return &doc.Sections[secIdx] }

	// ensureEntry returns the current entry, creating an empty one when a
	// bullet arrives before any heading so its content is not dropped.
	ensureEntry := func() *Entry {
		sec := curSection()
		if entryIdx < 0 {
			sec.Entries = append(sec.Entries, Entry{})
			entryIdx = len(sec.Entries) - 1
		}
		return &sec.Entries[entryIdx]
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isNoise(line) {
			continue
		}

		// Heading block: \begin{center} ... \end{center} carries the
		// person's name and contact line.
		if strings.HasPrefix(line, `\end{center}`) {
			insideHeading = false
			continue
		}
		if insideHeading {
			if text := cleanText(line); text != "" {
				switch {
				case doc.Name == "":
					doc.Name = text
				case doc.Contact == "":
					doc.Contact = text
				}
			}
			continue
		}
		if strings.HasPrefix(line, `\begin{center}`) {
			insideHeading = true
			continue
		}

		// Old-dialect direct commands; values are taken raw.
		if v, ok := braceArg(line, `\name`); ok {
			if doc.Name == "" {
				doc.Name = v
			}
			continue
		}
		if v, ok := braceArg(line, `\contact`); ok {
			if doc.Contact == "" {
				doc.Contact = v
			}
			continue
		}

		// Section start: \section{...} or \section*{...}. The raw title is
		// kept; the new section becomes the insertion target.
		if m := sectionCmd.FindStringSubmatch(line); m != nil {
			doc.Sections = append(doc.Sections, Section{Title: m[1]})
			secIdx = len(doc.Sections) - 1
			entryIdx = -1
			continue
		}

		// Macro-dialect heading: \resumeSubheading{h}{r1}{sub}{r2}.
		// Arguments may span physical lines; keep consuming until four
		// top-level brace groups are collected or input runs out.
		if strings.HasPrefix(line, `\resumeSubheading`) {
			buf := strings.TrimPrefix(line, `\resumeSubheading`)
			args, ok := braceArgs(buf, 4)
			for !ok && i+1 < len(lines) {
				i++
				buf += "\n" + strings.TrimSpace(lines[i])
				args, ok = braceArgs(buf, 4)
			}
			if ok && secIdx >= 0 {
				sec := curSection()
				sec.Entries = append(sec.Entries, Entry{
					Heading:    cleanText(args[0]),
					Right1:     cleanText(args[1]),
					Subheading: cleanText(args[2]),
					Right2:     cleanText(args[3]),
				})
				entryIdx = len(sec.Entries) - 1
			}
			continue
		}

		// Old-dialect heading pair: \textbf{...} \hfill right.
		if m := oldHeading.FindStringSubmatch(line); m != nil {
			if secIdx >= 0 {
				sec := curSection()
				sec.Entries = append(sec.Entries, Entry{
					Heading: cleanText(m[1]),
					Right1:  cleanText(m[2]),
				})
				entryIdx = len(sec.Entries) - 1
			}
			continue
		}

		// Old-dialect subheading: \textit{...} \hfill right. Mutates the
		// current entry in place; never creates one.
		if m := oldSubheading.FindStringSubmatch(line); m != nil {
			if secIdx >= 0 && entryIdx >= 0 {
				e := &curSection().Entries[entryIdx]
				e.Subheading = cleanText(m[1])
				e.Right2 = cleanText(m[2])
			}
			continue
		}

		// Bullet variants. \resumeItemWithTitle must be tried before
		// \resumeItem, which is its prefix.
		if strings.HasPrefix(line, `\resumeItemWithTitle`) {
			if secIdx >= 0 {
				if args, ok := braceArgs(strings.TrimPrefix(line, `\resumeItemWithTitle`), 2); ok {
					e := ensureEntry()
					e.Bullets = append(e.Bullets, "<b>"+cleanText(args[0])+"</b>: "+cleanText(args[1]))
				}
			}
			continue
		}
		if strings.HasPrefix(line, `\resumeItem`) {
			if secIdx >= 0 {
				if args, ok := braceArgs(strings.TrimPrefix(line, `\resumeItem`), 1); ok {
					e := ensureEntry()
					e.Bullets = append(e.Bullets, cleanText(args[0]))
				}
			}
			continue
		}
		if strings.HasPrefix(line, `\item`) {
			rest := strings.TrimSpace(strings.TrimPrefix(line, `\item`))
			small := strings.HasPrefix(rest, `\small`)
			if !small && strings.Contains(line, "tabular") {
				// Layout artifact from tabular alignment, not content.
				continue
			}
			if secIdx >= 0 {
				if text := cleanText(rest); text != "" {
					e := ensureEntry()
					e.Bullets = append(e.Bullets, text)
				}
			}
			continue
		}
	}

	return doc
}

// isNoise reports whether the line matches one of the fixed preamble/layout
// prefixes that are skipped in every parser state.
func isNoise(line string) bool {
	for _, p := range noisePrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// braceArg extracts the single brace-delimited argument of cmd when line
// starts with cmd{. The value is returned raw.
func braceArg(line, cmd string) (string, bool) {
	if !strings.HasPrefix(line, cmd+"{") {
		return "", false
	}
	args, ok := braceArgs(line[len(cmd):], 1)
	if !ok {
		return "", false
	}
	return args[0], true
}

// braceArgs scans s for the first n top-level {...} spans, counting nesting
// depth explicitly so braces from inline markup inside an argument are
// preserved. Returns ok=false when fewer than n spans are found.
func braceArgs(s string, n int) ([]string, bool) {
	args := make([]string, 0, n)
	depth := 0
	start := 0
	for i := 0; i < len(s) && len(args) < n; i++ {
		switch s[i] {
		case '{':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					args = append(args, s[start:i])
				}
			}
		}
	}
	return args, len(args) == n
}
