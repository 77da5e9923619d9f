package rendering

import "strings"

// latexReplacer maps the characters LaTeX treats specially to their literal forms.
// Replacements are not rescanned, so the braces of \textbackslash{} survive.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
	`|`, `\textbar{}`,
)

// EscapeLaTeX makes text safe to place in a LaTeX document body.
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}

// EscapeLaTeXParagraphs escapes free text and keeps its line structure:
// single newlines become line breaks and blank lines separate paragraphs.
func EscapeLaTeXParagraphs(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return ""
	}

	var paragraphs []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		for i, line := range lines {
			lines[i] = EscapeLaTeX(strings.TrimSpace(line))
		}
		paragraphs = append(paragraphs, strings.Join(lines, `\\`+"\n"))
	}
	return strings.Join(paragraphs, "\n\n")
}
