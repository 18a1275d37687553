package uniapply

import "testing"

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold command",
			input: `\textbf{Acme Corp}`,
			want:  "<b>Acme Corp</b>",
		},
		{
			name:  "italic command",
			input: `\textit{Engineer}`,
			want:  "<i>Engineer</i>",
		},
		{
			name:  "emph command",
			input: `\emph{really}`,
			want:  "<i>really</i>",
		},
		{
			name:  "underline unwrapped",
			input: `\underline{kept text}`,
			want:  "kept text",
		},
		{
			name:  "hyperlink keeps visible text",
			input: `\href{https://example.com}{my site}`,
			want:  "my site",
		},
		{
			name:  "hfill removed",
			input: `left \hfill right`,
			want:  "left  right",
		},
		{
			name:  "vspace removed",
			input: `text \vspace{-2pt}`,
			want:  "text",
		},
		{
			name:  "starred vspace removed",
			input: `text \vspace*{4pt}`,
			want:  "text",
		},
		{
			name:  "small removed",
			input: `\small{GPA: 3.9}`,
			want:  "GPA: 3.9",
		},
		{
			name:  "escaped bar separator",
			input: `email@example.com $|$ 555-0100`,
			want:  "email@example.com  |  555-0100",
		},
		{
			name:  "line break removed",
			input: `John Doe \\`,
			want:  "John Doe",
		},
		{
			name:  "stray braces stripped",
			input: `{Huge title}`,
			want:  "Huge title",
		},
		{
			name:  "whitespace trimmed",
			input: "   padded   ",
			want:  "padded",
		},
		{
			name:  "mixed markup",
			input: `\textbf{Lead} work on \emph{parser} \hfill \href{https://x.dev}{x.dev} \\`,
			want:  "<b>Lead</b> work on <i>parser</i>  x.dev",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cleanText(tt.input); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Cleaning already-cleaned text must be a no-op, since every field value
// flows through the cleaner exactly once per parse but may be cleaned again
// by downstream callers.
func TestCleanText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`\textbf{Acme Corp} \hfill Remote`,
		`\textit{Engineer} $|$ \href{https://a.io}{a.io}`,
		`{nested {braces}} \vspace{-4pt} \\`,
		`plain text with <b>tags</b> already`,
		"",
	}

	for _, in := range inputs {
		once := cleanText(in)
		twice := cleanText(once)
		if once != twice {
			t.Errorf("cleanText not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
