package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// Post content is authored in a small markdown dialect: headings, fenced
// code blocks, unordered lists, blockquotes, paragraphs, and inline
// bold/italic/code/links. Input is escaped before inline markup is applied.

var (
	reBold   = regexp.MustCompile("\\*\\*(.+?)\\*\\*")
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reCode   = regexp.MustCompile("`([^`]+)`")
	reLink   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Markdown renders post content as a templ component.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		renderMarkdown(&b, content)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func renderMarkdown(b *strings.Builder, md string) {
	lines := strings.Split(md, "\n")
	inPara := false
	inList := false
	inQuote := false
	inCode := false

	flushPara := func() {
		if inPara {
			b.WriteString("</p>\n")
			inPara = false
		}
	}
	flushList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}
	flushQuote := func() {
		if inQuote {
			b.WriteString("</blockquote>\n")
			inQuote = false
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				b.WriteString("</code></pre>\n")
				inCode = false
			} else {
				flushPara()
				flushList()
				flushQuote()
				b.WriteString("<pre><code>")
				inCode = true
			}
			continue
		}
		if inCode {
			b.WriteString(html.EscapeString(line))
			b.WriteByte('\n')
			continue
		}

		switch {
		case trimmed == "":
			flushPara()
			flushList()
			flushQuote()
		case strings.HasPrefix(trimmed, "### "):
			flushPara()
			flushList()
			flushQuote()
			fmt.Fprintf(b, "<h3>%s</h3>\n", inline(strings.TrimPrefix(trimmed, "### ")))
		case strings.HasPrefix(trimmed, "## "):
			flushPara()
			flushList()
			flushQuote()
			fmt.Fprintf(b, "<h2>%s</h2>\n", inline(strings.TrimPrefix(trimmed, "## ")))
		case strings.HasPrefix(trimmed, "# "):
			flushPara()
			flushList()
			flushQuote()
			fmt.Fprintf(b, "<h1>%s</h1>\n", inline(strings.TrimPrefix(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			flushPara()
			flushQuote()
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			fmt.Fprintf(b, "<li>%s</li>\n", inline(trimmed[2:]))
		case strings.HasPrefix(trimmed, "> "):
			flushPara()
			flushList()
			if !inQuote {
				b.WriteString("<blockquote>\n")
				inQuote = true
			}
			fmt.Fprintf(b, "%s\n", inline(strings.TrimPrefix(trimmed, "> ")))
		default:
			flushList()
			flushQuote()
			if !inPara {
				b.WriteString("<p>")
				inPara = true
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(inline(trimmed))
		}
	}
	flushPara()
	flushList()
	flushQuote()
	if inCode {
		b.WriteString("</code></pre>\n")
	}
}

// inline escapes a line and applies inline markup.
func inline(s string) string {
	s = html.EscapeString(s)
	s = reCode.ReplaceAllString(s, "<code>$1</code>")
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")
	s = reLink.ReplaceAllString(s, `<a href="$2">$1</a>`)
	return s
}
