package rendering

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never have an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}

// CheckWellFormed verifies that markup is a complete document: a single html root,
// every non-void element closed in order, and no stray end tags.
func CheckWellFormed(markup string) error {
	z := html.NewTokenizer(strings.NewReader(markup))
	var stack []string
	roots := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return &MalformedError{Message: "tokenizer failure", Cause: z.Err()}
			}
			if len(stack) > 0 {
				return &MalformedError{Message: fmt.Sprintf("unclosed element <%s>", stack[len(stack)-1])}
			}
			if roots != 1 {
				return &MalformedError{Message: fmt.Sprintf("expected one <html> root, found %d", roots)}
			}
			return nil

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if len(stack) == 0 {
				if tag != "html" {
					return &MalformedError{Message: fmt.Sprintf("element <%s> outside <html>", tag)}
				}
				roots++
			}
			if !voidElements[tag] {
				stack = append(stack, tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				continue
			}
			if len(stack) == 0 || stack[len(stack)-1] != tag {
				return &MalformedError{Message: fmt.Sprintf("unexpected </%s>", tag)}
			}
			stack = stack[:len(stack)-1]

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 {
				return &MalformedError{Message: fmt.Sprintf("element <%s/> outside <html>", name)}
			}

		case html.TextToken:
			if len(stack) == 0 && strings.TrimSpace(string(z.Text())) != "" {
				return &MalformedError{Message: "text outside <html>"}
			}
		}
	}
}
