package rendering

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText extracts a readable text preview from rendered HTML: the name, the contact
// line, then each section title followed by its entries, one block per line.
func PlainText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", &RenderError{Message: "failed to parse rendered HTML", Cause: err}
	}

	doc.Find("style, script").Remove()

	var sb strings.Builder
	header := doc.Find("header")
	name := cleanWhitespace(header.Find("h1").Text())
	sb.WriteString(name + "\n")
	sb.WriteString(strings.Repeat("=", len([]rune(name))) + "\n")

	var contact []string
	header.Find(".contactInfo p").Each(func(_ int, s *goquery.Selection) {
		contact = append(contact, cleanWhitespace(s.Text()))
	})
	if len(contact) > 0 {
		sb.WriteString(strings.Join(contact, "  ") + "\n")
	}

	doc.Find("section").Each(func(_ int, section *goquery.Selection) {
		title := cleanWhitespace(section.Find("h2").First().Text())
		sb.WriteString(fmt.Sprintf("\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title)))))

		section.Children().Not("h2").Each(func(_ int, block *goquery.Selection) {
			if block.HasClass("item") {
				var parts []string
				block.Children().Each(func(_ int, line *goquery.Selection) {
					if text := cleanWhitespace(line.Text()); text != "" {
						parts = append(parts, text)
					}
				})
				sb.WriteString("  " + strings.Join(parts, " | ") + "\n")
				return
			}
			if text := cleanWhitespace(block.Text()); text != "" {
				sb.WriteString("  " + text + "\n")
			}
		})
	})

	return sb.String(), nil
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
